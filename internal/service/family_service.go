package service

import (
	"context"
	"net/url"
	"strings"

	"afterReach/internal/models"
)

const ResourceFamilyMember = "family member"

// FamilyService manages the family network directory.
type FamilyService struct {
	*ListController[models.FamilyMember, *models.FamilyMember]
}

func NewFamilyService() *FamilyService {
	return &FamilyService{
		ListController: NewListController[models.FamilyMember, *models.FamilyMember](ListConfig[models.FamilyMember]{
			Resource:  ResourceFamilyMember,
			Placement: PlaceTail,
			Validate:  validateFamilyMember,
			SearchText: func(m *models.FamilyMember) []string {
				return []string{m.FullName, m.Relationship, m.Address}
			},
		}),
	}
}

func validateFamilyMember(m *models.FamilyMember) []FieldIssue {
	var is issues
	is.required("fullName", m.FullName)
	is.required("relationship", m.Relationship)
	return is
}

// avatarURL is the generated placeholder used when no image was uploaded.
func avatarURL(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "User"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func (s *FamilyService) Add(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	member.FullName = strings.TrimSpace(member.FullName)
	if member.ProfileImage == "" {
		member.ProfileImage = avatarURL(member.FullName)
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}
	return s.ListController.Add(ctx, member)
}

func (s *FamilyService) AddSkill(ctx context.Context, id, skill string) (models.FamilyMember, error) {
	return s.Mutate(ctx, id, func(m *models.FamilyMember) error {
		skills, err := models.AddTag(m.Skills, skill)
		if err != nil {
			return NewValidationError("skill", err.Error())
		}
		m.Skills = skills
		return nil
	})
}

func (s *FamilyService) RemoveSkill(ctx context.Context, id string, index int) (models.FamilyMember, error) {
	return s.Mutate(ctx, id, func(m *models.FamilyMember) error {
		skills, err := models.RemoveTag(m.Skills, index)
		if err != nil {
			return NewValidationError("index", err.Error())
		}
		m.Skills = skills
		return nil
	})
}

// MemberName implements MemberLookup.
func (s *FamilyService) MemberName(id string) (string, bool) {
	m, ok := s.Lookup(id)
	if !ok {
		return "", false
	}
	return m.FullName, true
}
