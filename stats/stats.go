// Package stats computes the derived project metrics every dashboard surface
// shares: days remaining, completion percentage, delayed tasks and revenue
// aggregates. All functions are pure; callers inject "now" so results are
// deterministic. Date arithmetic uses UTC civil dates throughout, so a
// deadline flips at UTC midnight regardless of server locale, and lateness is
// counted in whole civil days: a task overdue by less than a full day is
// already one day late.
package stats

import (
	"time"

	"lesmarvelous-backend/models"
)

// ColorBand buckets a days-remaining figure for display.
type ColorBand string

const (
	BandOverdue ColorBand = "overdue"
	BandWarning ColorBand = "warning"
	BandOnTrack ColorBand = "ontrack"
)

// warningWindowDays is the policy threshold below which a project is flagged
// as due soon.
const warningWindowDays = 7

// civilDate truncates an instant to its UTC calendar day.
func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysRemaining returns the whole days from now until the project's delivery
// date (event date + delivery window). Both instants are truncated to UTC
// calendar days first, so the difference is an exact day count and the
// ceiling rounding of the partial-day case is already accounted for.
// Negative means overdue.
func DaysRemaining(p *models.Project, now time.Time) int {
	return int(civilDate(p.DeliveryDate()).Sub(civilDate(now)).Hours() / 24)
}

// ProgressPercent returns the wedding task completion percentage, rounded to
// the nearest integer. Non-wedding projects and weddings with no tasks report
// 0 rather than dividing by zero.
func ProgressPercent(p *models.Project) int {
	if p.Type != models.ProjectWedding || len(p.Tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range p.Tasks {
		if t.Status == models.TaskCompleted {
			completed++
		}
	}
	return int(float64(completed)/float64(len(p.Tasks))*100 + 0.5)
}

// StatusColorBand maps a days-remaining figure to its display band.
func StatusColorBand(daysRemaining int) ColorBand {
	switch {
	case daysRemaining < 0:
		return BandOverdue
	case daysRemaining < warningWindowDays:
		return BandWarning
	default:
		return BandOnTrack
	}
}

// DelayedTask pairs an overdue task with its owning project.
type DelayedTask struct {
	Task        models.Task        `json:"task"`
	ProjectID   uint               `json:"project_id"`
	ProjectName string             `json:"project_name"`
	ProjectType models.ProjectType `json:"project_type"`
	DaysLate    int                `json:"days_late"`
}

// DelayedTasks collects every incomplete task whose due date has passed,
// across all projects, in project then task order. Completed tasks are never
// late, whatever their due date.
func DelayedTasks(projects []models.Project, now time.Time) []DelayedTask {
	today := civilDate(now)
	var out []DelayedTask
	for i := range projects {
		p := &projects[i]
		if p.Type != models.ProjectWedding {
			continue
		}
		for _, t := range p.Tasks {
			due := civilDate(t.DueDate)
			if t.Status == models.TaskCompleted || !due.Before(today) {
				continue
			}
			out = append(out, DelayedTask{
				Task:        t,
				ProjectID:   p.ID,
				ProjectName: p.Couple,
				ProjectType: p.Type,
				DaysLate:    int(today.Sub(due).Hours() / 24),
			})
		}
	}
	return out
}

// RevenueAggregate sums project prices into buckets chosen by keyFn. Projects
// without a price contribute zero. An empty input yields an empty map.
func RevenueAggregate(projects []models.Project, keyFn func(*models.Project) string) map[string]float64 {
	buckets := make(map[string]float64)
	for i := range projects {
		p := &projects[i]
		buckets[keyFn(p)] += p.Price
	}
	return buckets
}

// Bucket key functions for the financial overview.

func ByType(p *models.Project) string    { return string(p.Type) }
func ByCountry(p *models.Project) string { return p.Country }

// ByMonth buckets by the event's UTC calendar month, e.g. "2024-06".
func ByMonth(p *models.Project) string { return p.Date.UTC().Format("2006-01") }

// ProjectCounts is the QuickStats tally.
type ProjectCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Delayed   int `json:"delayed"`
}

// CountByStatus tallies projects by lifecycle status.
func CountByStatus(projects []models.Project) ProjectCounts {
	counts := ProjectCounts{Total: len(projects)}
	for i := range projects {
		switch projects[i].Status {
		case models.StatusEnCours:
			counts.Active++
		case models.StatusAVenir:
			counts.Upcoming++
		case models.StatusTermine:
			counts.Completed++
		case models.StatusEnRetard:
			counts.Delayed++
		}
	}
	return counts
}
