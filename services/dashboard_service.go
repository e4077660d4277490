package services

import (
	"time"

	"gorm.io/gorm"

	"lesmarvelous-backend/filter"
	"lesmarvelous-backend/stats"
)

// DashboardService renders the dashboard figures server-side from the same
// pure computations the client views use.
type DashboardService struct {
	projects *ProjectService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{projects: NewProjectService(db)}
}

// Overview is the quick-stats plus financial-overview payload.
type Overview struct {
	Counts           stats.ProjectCounts `json:"counts"`
	DelayedTaskCount int                 `json:"delayed_task_count"`
	TotalRevenue     float64             `json:"total_revenue"`
	RevenueByType    map[string]float64  `json:"revenue_by_type"`
	RevenueByCountry map[string]float64  `json:"revenue_by_country"`
	RevenueByMonth   map[string]float64  `json:"revenue_by_month"`
}

// Stats computes the overview over an optionally filtered project set.
func (s *DashboardService) Stats(f filter.Filter, now time.Time) (*Overview, error) {
	projects, err := s.projects.List()
	if err != nil {
		return nil, err
	}
	projects = filter.Apply(projects, f)

	total := 0.0
	for i := range projects {
		total += projects[i].Price
	}

	return &Overview{
		Counts:           stats.CountByStatus(projects),
		DelayedTaskCount: len(stats.DelayedTasks(projects, now)),
		TotalRevenue:     total,
		RevenueByType:    stats.RevenueAggregate(projects, stats.ByType),
		RevenueByCountry: stats.RevenueAggregate(projects, stats.ByCountry),
		RevenueByMonth:   stats.RevenueAggregate(projects, stats.ByMonth),
	}, nil
}

// DelayedTasks lists every overdue incomplete task across all projects.
func (s *DashboardService) DelayedTasks(now time.Time) ([]stats.DelayedTask, error) {
	projects, err := s.projects.List()
	if err != nil {
		return nil, err
	}
	return stats.DelayedTasks(projects, now), nil
}
