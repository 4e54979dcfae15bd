package service

import (
	"context"
	"strings"
	"sync"

	"afterReach/internal/logger"
	"afterReach/internal/models"

	"go.uber.org/zap"
)

// ProfileService holds the single signed-in user's profile.
type ProfileService struct {
	mtx     sync.RWMutex
	profile models.UserProfile
}

func NewProfileService(initial models.UserProfile) *ProfileService {
	return &ProfileService{profile: initial}
}

func (s *ProfileService) Get(ctx context.Context) models.UserProfile {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.profile
}

// Update replaces the profile wholesale.
func (s *ProfileService) Update(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)

	var is issues
	is.required("firstName", p.FirstName)
	is.required("lastName", p.LastName)
	is.required("email", p.Email)
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		is.add("email", "must be an email address")
	}
	if len(is) > 0 {
		return models.UserProfile{}, NewInvalidRecord("profile", is)
	}

	s.mtx.Lock()
	s.profile = p
	s.mtx.Unlock()

	logger.Info("Service: profile updated", zap.String("name", p.FullName()))
	return p, nil
}

// DisplayName implements AuthorSource.
func (s *ProfileService) DisplayName() string {
	return s.Get(context.Background()).FullName()
}
