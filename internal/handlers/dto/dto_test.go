package dto_test

import (
	"testing"

	"afterReach/internal/handlers/dto"
	"afterReach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUpdateRequest_OnlyPresentFieldsBecomeOptions(t *testing.T) {
	title := "Meet with Probate Attorney"
	opts := dto.UpdateLegalTaskRequest{Title: &title}.Options()

	task := models.LegalTask{ID: "5", Title: "Meet with Attorney", Description: "Schedule consultation."}
	applied := 0
	for _, opt := range opts {
		if opt != nil {
			opt(&task)
			applied++
		}
	}

	assert.Equal(t, 1, applied)
	assert.Equal(t, title, task.Title)
	assert.Equal(t, "Schedule consultation.", task.Description)
}

func TestUpdateFamilyMemberRequest_EmptySkillsClears(t *testing.T) {
	skills := []string{}
	m := models.FamilyMember{Skills: []string{"Driving"}}
	for _, opt := range (dto.UpdateFamilyMemberRequest{Skills: &skills}).Options() {
		if opt != nil {
			opt(&m)
		}
	}
	assert.Empty(t, m.Skills)
}
