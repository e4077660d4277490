package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lesmarvelous-backend/filter"
	"lesmarvelous-backend/models"
	"lesmarvelous-backend/testutil"
)

func TestDashboardStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	tasks := NewTaskService(db)
	dashboard := NewDashboardService(db)

	wedding := newWedding("Alice & Bob", date(2024, 6, 15))
	require.NoError(t, projects.Create(wedding))
	require.NoError(t, tasks.Create(&models.Task{
		ProjectID: wedding.ID,
		Title:     "Tri des photos",
		DueDate:   date(2024, 7, 1),
		Status:    models.TaskPending,
	}, date(2024, 6, 16)))

	studio := &models.Project{
		Type:         models.ProjectStudio,
		Couple:       "Séance Dupont",
		Date:         date(2024, 7, 10),
		Country:      models.CountryCameroon,
		DeliveryDays: 14,
		Status:       models.StatusTermine,
		Price:        300,
	}
	require.NoError(t, projects.Create(studio))

	now := date(2024, 8, 1)
	overview, err := dashboard.Stats(filter.Filter{}, now)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Counts.Total)
	assert.Equal(t, 1, overview.Counts.Active)
	assert.Equal(t, 1, overview.Counts.Completed)
	assert.Equal(t, 1, overview.DelayedTaskCount) // the pending task due July 1st
	assert.Equal(t, 2800.0, overview.TotalRevenue)
	assert.Equal(t, 2500.0, overview.RevenueByType["wedding"])
	assert.Equal(t, 300.0, overview.RevenueByCountry["cm"])
	assert.Equal(t, 2500.0, overview.RevenueByMonth["2024-06"])
}

func TestDashboardStatsFiltered(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	dashboard := NewDashboardService(db)

	require.NoError(t, projects.Create(newWedding("Alice & Bob", date(2024, 6, 15))))
	studio := &models.Project{
		Type:         models.ProjectStudio,
		Couple:       "Séance Dupont",
		Date:         date(2024, 7, 10),
		Country:      models.CountryCameroon,
		DeliveryDays: 14,
		Status:       models.StatusEnCours,
		Price:        300,
	}
	require.NoError(t, projects.Create(studio))

	overview, err := dashboard.Stats(filter.Filter{Type: []string{"studio"}}, date(2024, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, overview.Counts.Total)
	assert.Equal(t, 300.0, overview.TotalRevenue)
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	dashboard := NewDashboardService(db)

	overview, err := dashboard.Stats(filter.Filter{}, date(2024, 8, 1))
	require.NoError(t, err)
	assert.Zero(t, overview.Counts.Total)
	assert.Zero(t, overview.TotalRevenue)
	assert.Empty(t, overview.RevenueByType)
}
