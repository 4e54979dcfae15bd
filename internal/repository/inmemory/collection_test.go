package inmemory_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"afterReach/internal/models"
	"afterReach/internal/repository"
	"afterReach/internal/repository/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(tasks []models.PersonalTask) []string {
	res := make([]string, len(tasks))
	for i, t := range tasks {
		res[i] = t.Title
	}
	return res
}

// TestCollection_Order checks head and tail insertion
func TestCollection_Order(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()

	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Title: "first"}))
	require.NoError(t, c.Append("2", models.PersonalTask{ID: "2", Title: "second"}))
	require.NoError(t, c.Prepend("3", models.PersonalTask{ID: "3", Title: "newest"}))

	assert.Equal(t, []string{"newest", "first", "second"}, titles(c.List()))
	assert.Equal(t, 3, c.Len())
}

func TestCollection_DuplicateID(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1"}))

	assert.ErrorIs(t, c.Append("1", models.PersonalTask{ID: "1"}), repository.ErrDuplicateID)
	assert.ErrorIs(t, c.Prepend("1", models.PersonalTask{ID: "1"}), repository.ErrDuplicateID)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_GetNotFound(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()

	_, err := c.Get("missing")
	assert.Equal(t, repository.ErrNotFound, err)
	assert.False(t, c.Has("missing"))
}

// TestCollection_ValuesAreCopies checks that callers cannot mutate stored records
func TestCollection_ValuesAreCopies(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Title: "original"}))

	got, err := c.Get("1")
	require.NoError(t, err)
	got.Title = "changed"

	list := c.List()
	list[0].Title = "changed too"

	stored, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}

func TestCollection_Replace(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Title: "a"}))
	require.NoError(t, c.Append("2", models.PersonalTask{ID: "2", Title: "b"}))

	require.NoError(t, c.Replace("1", models.PersonalTask{ID: "1", Title: "a2"}))
	assert.Equal(t, []string{"a2", "b"}, titles(c.List()))

	assert.ErrorIs(t, c.Replace("9", models.PersonalTask{}), repository.ErrNotFound)
}

func TestCollection_Update(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Title: "a"}))

	updated, err := c.Update("1", func(task *models.PersonalTask) error {
		task.Completed = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	boom := errors.New("rejected")
	_, err = c.Update("1", func(task *models.PersonalTask) error {
		task.Title = "should not stick"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, _ := c.Get("1")
	assert.Equal(t, "a", stored.Title)

	_, err = c.Update("missing", func(*models.PersonalTask) error { return nil })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection_UpdateWhere(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Category: "Pet"}))
	require.NoError(t, c.Append("2", models.PersonalTask{ID: "2", Category: "Admin"}))
	require.NoError(t, c.Append("3", models.PersonalTask{ID: "3", Category: "Pet"}))

	changed := c.UpdateWhere(func(task *models.PersonalTask) bool {
		if task.Category != "Pet" {
			return false
		}
		task.Category = "Animals"
		return true
	})

	assert.Equal(t, 2, changed)
	for _, task := range c.List() {
		assert.NotEqual(t, "Pet", task.Category)
	}
}

// TestCollection_IdsSliceConsistency removes from the middle and checks the order survives
func TestCollection_IdsSliceConsistency(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	for i := 0; i < 5; i++ {
		id := fmt.Sprint(i)
		require.NoError(t, c.Append(id, models.PersonalTask{ID: id, Title: "Task " + id}))
	}

	removed, err := c.Remove("2")
	require.NoError(t, err)
	assert.Equal(t, "Task 2", removed.Title)

	assert.Equal(t, []string{"Task 0", "Task 1", "Task 3", "Task 4"}, titles(c.List()))

	_, err = c.Remove("2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection_Filter(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()
	require.NoError(t, c.Append("1", models.PersonalTask{ID: "1", Title: "a", Completed: true}))
	require.NoError(t, c.Append("2", models.PersonalTask{ID: "2", Title: "b"}))

	open := c.Filter(func(task models.PersonalTask) bool { return !task.Completed })
	assert.Equal(t, []string{"b"}, titles(open))
	assert.Empty(t, c.Filter(func(models.PersonalTask) bool { return false }))
}

func TestCollection_Concurrency(t *testing.T) {
	c := inmemory.NewCollection[models.PersonalTask]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprint(i)
			_ = c.Prepend(id, models.PersonalTask{ID: id})
			_ = c.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
