package inmemory_test

import (
	"testing"

	"afterReach/internal/repository"
	"afterReach/internal/repository/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameList_Add(t *testing.T) {
	l := inmemory.NewNameList("Funeral Director", "Elder Attorney")

	name, err := l.Add("  Grief Counselor ")
	require.NoError(t, err)
	assert.Equal(t, "Grief Counselor", name)

	_, err = l.Add("Elder Attorney")
	assert.ErrorIs(t, err, repository.ErrDuplicateName)

	_, err = l.Add("elder attorney")
	assert.NoError(t, err, "names are case-sensitive")

	_, err = l.Add("   ")
	assert.ErrorIs(t, err, repository.ErrEmptyName)

	assert.Equal(t, []string{"Funeral Director", "Elder Attorney", "Grief Counselor", "elder attorney"}, l.List())
}

func TestNameList_InitialDuplicatesCollapse(t *testing.T) {
	l := inmemory.NewNameList("Pet", "Pet", "Admin")
	assert.Equal(t, []string{"Pet", "Admin"}, l.List())
}

func TestNameList_Rename(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		err      error
		expected []string
	}{
		{name: "keeps position", old: "Household", new: "Home", expected: []string{"Personal", "Home", "Pet"}},
		{name: "same name is no-op", old: "Pet", new: " Pet ", expected: []string{"Personal", "Household", "Pet"}},
		{name: "duplicate rejected", old: "Pet", new: "Personal", err: repository.ErrDuplicateName, expected: []string{"Personal", "Household", "Pet"}},
		{name: "unknown old", old: "Admin", new: "Paperwork", err: repository.ErrNotFound, expected: []string{"Personal", "Household", "Pet"}},
		{name: "empty new", old: "Pet", new: "", err: repository.ErrEmptyName, expected: []string{"Personal", "Household", "Pet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := inmemory.NewNameList("Personal", "Household", "Pet")
			_, err := l.Rename(tt.old, tt.new)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, l.List())
		})
	}
}

func TestNameList_Remove(t *testing.T) {
	l := inmemory.NewNameList("Personal", "Pet")

	require.NoError(t, l.Remove("Personal"))
	assert.False(t, l.Contains("Personal"))
	assert.True(t, l.Contains("Pet"))
	assert.ErrorIs(t, l.Remove("Personal"), repository.ErrNotFound)
}
