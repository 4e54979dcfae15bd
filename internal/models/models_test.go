package models_test

import (
	"testing"

	"afterReach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTag(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		tag      string
		expected []string
		err      error
	}{
		{name: "append trimmed", tags: []string{"Cooking"}, tag: "  Driving ", expected: []string{"Cooking", "Driving"}},
		{name: "duplicates allowed", tags: []string{"Driving"}, tag: "Driving", expected: []string{"Driving", "Driving"}},
		{name: "empty rejected", tags: []string{"Driving"}, tag: "   ", expected: []string{"Driving"}, err: models.ErrEmptyTag},
		{name: "nil list", tags: nil, tag: "Childcare", expected: []string{"Childcare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.AddTag(tt.tags, tt.tag)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddTag_DoesNotAliasInput(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "a"

	got, err := models.AddTag(base, "b")
	require.NoError(t, err)
	got[0] = "changed"

	assert.Equal(t, "a", base[0])
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"Probate", "Trusts", "Probate"}

	got, err := models.RemoveTag(tags, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Probate", "Trusts"}, got)
	assert.Len(t, tags, 3)

	_, err = models.RemoveTag(tags, 3)
	assert.ErrorIs(t, err, models.ErrTagOutOfRange)

	_, err = models.RemoveTag(tags, -1)
	assert.ErrorIs(t, err, models.ErrTagOutOfRange)
}

func TestEventType_Valid(t *testing.T) {
	assert.True(t, models.EventPet.Valid())
	assert.False(t, models.EventType("birthday").Valid())
}

func TestUserProfile_FullName(t *testing.T) {
	assert.Equal(t, "Alex Doe", models.UserProfile{FirstName: "Alex", LastName: "Doe"}.FullName())
	assert.Equal(t, "Alex", models.UserProfile{FirstName: "Alex"}.FullName())
}
