// Package seed loads the demo data every fresh state starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var fixture []byte

type Data struct {
	Profile       models.UserProfile     `yaml:"profile"`
	Roles         []string               `yaml:"roles"`
	Categories    []string               `yaml:"categories"`
	Events        []models.CalendarEvent `yaml:"events"`
	Professionals []models.Professional  `yaml:"professionals"`
	LegalTasks    []models.LegalTask     `yaml:"legalTasks"`
	Documents     []models.DocumentItem  `yaml:"documents"`
	FamilyMembers []models.FamilyMember  `yaml:"familyMembers"`
	PersonalTasks []models.PersonalTask  `yaml:"personalTasks"`
}

// Default decodes the embedded fixture.
func Default() (*Data, error) {
	return Parse(fixture)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}
	return &d, nil
}

// Apply loads d into st in fixture order. Records are validated like any other
// write, so a bad fixture fails here instead of at request time.
func (d *Data) Apply(ctx context.Context, st *service.State) error {
	if _, err := st.Profile.Update(ctx, d.Profile); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	for _, role := range d.Roles {
		if _, err := st.Roles.Add(ctx, role); err != nil {
			return fmt.Errorf("seed role %q: %w", role, err)
		}
	}
	for _, category := range d.Categories {
		if st.Categories.Contains(category) {
			continue
		}
		if _, err := st.Categories.Add(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", category, err)
		}
	}

	steps := []struct {
		name string
		load func() error
	}{
		{"legal tasks", func() error { return st.Checklist.Load(d.LegalTasks...) }},
		{"family members", func() error { return st.Family.Load(d.FamilyMembers...) }},
		{"personal tasks", func() error { return st.Tasks.Load(d.PersonalTasks...) }},
		{"professionals", func() error { return st.Directory.Load(d.Professionals...) }},
		{"documents", func() error { return st.Documents.Load(d.Documents...) }},
		{"calendar events", func() error { return st.Calendar.Load(d.Events...) }},
	}
	for _, step := range steps {
		if err := step.load(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	logger.Info("App: seed data loaded",
		zap.Int("legal_tasks", len(d.LegalTasks)),
		zap.Int("personal_tasks", len(d.PersonalTasks)),
		zap.Int("family_members", len(d.FamilyMembers)),
		zap.Int("professionals", len(d.Professionals)),
		zap.Int("documents", len(d.Documents)),
		zap.Int("events", len(d.Events)))
	return nil
}
