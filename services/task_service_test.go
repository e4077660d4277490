package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
	"lesmarvelous-backend/testutil"
)

func TestTaskCreateRequiresWeddingProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	tasks := NewTaskService(db)

	studio := &models.Project{
		Type:         models.ProjectStudio,
		Couple:       "Séance Dupont",
		Date:         date(2024, 6, 1),
		Country:      models.CountryFrance,
		DeliveryDays: 14,
		SessionType:  "portrait",
	}
	require.NoError(t, projects.Create(studio))

	err := tasks.Create(&models.Task{
		ProjectID:  studio.ID,
		Title:      "Retouche",
		DueDate:    date(2024, 6, 10),
		AssignedTo: "marc",
	}, date(2024, 6, 2))
	assert.ErrorIs(t, err, ErrNotWeddingProject)
}

func TestTaskCreateUnknownProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	tasks := NewTaskService(db)

	err := tasks.Create(&models.Task{ProjectID: 42, Title: "x", DueDate: date(2024, 6, 10)}, date(2024, 6, 2))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskCompletionStampsDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	tasks := NewTaskService(db)

	wedding := newWedding("Alice & Bob", date(2024, 6, 15))
	require.NoError(t, projects.Create(wedding))

	task := &models.Task{
		ProjectID:  wedding.ID,
		Title:      "Montage",
		DueDate:    date(2024, 7, 1),
		Status:     models.TaskPending,
		AssignedTo: "marc",
	}
	require.NoError(t, tasks.Create(task, date(2024, 6, 16)))
	assert.Nil(t, task.CompletedDate)

	// Completing the task stamps the date at the injected instant.
	completedAt := date(2024, 7, 2)
	updated, err := tasks.Update(task.ID, TaskChanges{Status: ptr(models.TaskCompleted)}, completedAt)
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedDate)
	assert.Equal(t, completedAt, *updated.CompletedDate)

	// A later edit keeps the original stamp.
	updated, err = tasks.Update(task.ID, TaskChanges{Title: ptr("Montage final")}, date(2024, 7, 3))
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedDate)
	assert.WithinDuration(t, completedAt, *updated.CompletedDate, time.Second)
	assert.Equal(t, "Montage final", updated.Title)

	// Reopening clears it.
	updated, err = tasks.Update(task.ID, TaskChanges{Status: ptr(models.TaskInProgress)}, date(2024, 7, 4))
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedDate)
}

func TestTaskUpdatePreservesOmittedFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	tasks := NewTaskService(db)

	wedding := newWedding("Alice & Bob", date(2024, 6, 15))
	require.NoError(t, projects.Create(wedding))

	task := &models.Task{
		ProjectID:   wedding.ID,
		Title:       "Montage",
		Description: "vérifier la sélection",
		DueDate:     date(2024, 7, 1),
		Status:      models.TaskPending,
		AssignedTo:  "marc",
	}
	require.NoError(t, tasks.Create(task, date(2024, 6, 16)))

	// A status-only change must not clear the other fields.
	updated, err := tasks.Update(task.ID, TaskChanges{Status: ptr(models.TaskInProgress)}, date(2024, 6, 20))
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, updated.Status)
	assert.Equal(t, "Montage", updated.Title)
	assert.Equal(t, "vérifier la sélection", updated.Description)
	assert.Equal(t, "marc", updated.AssignedTo)
}

func TestTaskListByProjectOrderedByDueDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewProjectService(db)
	tasks := NewTaskService(db)

	wedding := newWedding("Alice & Bob", date(2024, 6, 15))
	require.NoError(t, projects.Create(wedding))

	for _, d := range []int{20, 5, 12} {
		require.NoError(t, tasks.Create(&models.Task{
			ProjectID: wedding.ID,
			Title:     "t",
			DueDate:   date(2024, 7, d),
		}, date(2024, 6, 16)))
	}

	list, err := tasks.ListByProject(wedding.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].DueDate.Before(list[1].DueDate))
	assert.True(t, list[1].DueDate.Before(list[2].DueDate))
}
