package service_test

import (
	"context"
	"fmt"
	"testing"

	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistService_Progress(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		p := service.NewChecklistService().Progress(context.Background())
		assert.Equal(t, 0, p.Total)
		assert.Equal(t, 0, p.Percentage)
		assert.NotNil(t, p.Next)
		assert.Empty(t, p.Next)
	})

	t.Run("rounded percentage and next three in order", func(t *testing.T) {
		svc := service.NewChecklistService()
		var tasks []models.LegalTask
		for i := 1; i <= 17; i++ {
			tasks = append(tasks, models.LegalTask{
				ID:        fmt.Sprint(i),
				Title:     fmt.Sprintf("task %d", i),
				Completed: i == 2 || i == 6,
			})
		}
		require.NoError(t, svc.Load(tasks...))

		p := svc.Progress(context.Background())
		assert.Equal(t, 17, p.Total)
		assert.Equal(t, 2, p.Completed)
		assert.Equal(t, 15, p.Remaining)
		assert.Equal(t, 12, p.Percentage)
		assert.Equal(t, []string{"task 1", "task 3", "task 4"}, titles(p.Next))
	})

	t.Run("all done", func(t *testing.T) {
		svc := service.NewChecklistService()
		require.NoError(t, svc.Load(models.LegalTask{Title: "only", Completed: true}))

		p := svc.Progress(context.Background())
		assert.Equal(t, 100, p.Percentage)
		assert.Empty(t, p.Next)
	})
}

func TestChecklistService_AddAlwaysOpen(t *testing.T) {
	svc := service.NewChecklistService()
	task, err := svc.Add(context.Background(), models.LegalTask{Title: "  Notify Banks  ", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "Notify Banks", task.Title)
	assert.False(t, task.Completed)
}
