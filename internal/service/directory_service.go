package service

import (
	"context"
	"math"
	"strings"

	"afterReach/internal/logger"
	"afterReach/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ResourceProfessional = "professional"

const (
	defaultService      = "General Consultation"
	defaultLanguage     = "English"
	defaultAvailability = "Mon-Fri 9am-5pm"
)

// AuthorSource names the author of new reviews.
type AuthorSource interface {
	DisplayName() string
}

// DirectoryService manages the professional services directory.
type DirectoryService struct {
	*ListController[models.Professional, *models.Professional]
	clock   Clock
	authors AuthorSource
}

func NewDirectoryService(clock Clock, authors AuthorSource) *DirectoryService {
	return &DirectoryService{
		ListController: NewListController[models.Professional, *models.Professional](ListConfig[models.Professional]{
			Resource:  ResourceProfessional,
			Placement: PlaceTail,
			Validate:  validateProfessional,
			SearchText: func(p *models.Professional) []string {
				return []string{p.FullName, p.BusinessName, p.Role, p.Address}
			},
			Facet: func(p *models.Professional) string { return p.Role },
		}),
		clock:   clock.orDefault(),
		authors: authors,
	}
}

func validateProfessional(p *models.Professional) []FieldIssue {
	var is issues
	is.required("fullName", p.FullName)
	is.required("businessName", p.BusinessName)
	if p.Rating < 0 || p.Rating > 5 {
		is.add("rating", "must be between 0 and 5")
	}
	if p.ReviewCount != len(p.Reviews) {
		is.add("reviewCount", "must equal the number of reviews")
	}
	return is
}

// Add fills the defaults of the add form. New professionals start without reviews.
func (s *DirectoryService) Add(ctx context.Context, p models.Professional) (models.Professional, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.BusinessName = strings.TrimSpace(p.BusinessName)
	if p.ProfileImage == "" {
		p.ProfileImage = avatarURL(p.FullName)
	}
	if len(p.Services) == 0 {
		p.Services = []string{defaultService}
	}
	if len(p.Languages) == 0 {
		p.Languages = []string{defaultLanguage}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.Availability == "" {
		p.Availability = defaultAvailability
	}
	p.Reviews = []models.Review{}
	p.Rating = 0
	p.ReviewCount = 0
	return s.ListController.Add(ctx, p)
}

func (s *DirectoryService) AddService(ctx context.Context, id, service string) (models.Professional, error) {
	return s.Mutate(ctx, id, func(p *models.Professional) error {
		services, err := models.AddTag(p.Services, service)
		if err != nil {
			return NewValidationError("service", err.Error())
		}
		p.Services = services
		return nil
	})
}

func (s *DirectoryService) RemoveService(ctx context.Context, id string, index int) (models.Professional, error) {
	return s.Mutate(ctx, id, func(p *models.Professional) error {
		services, err := models.RemoveTag(p.Services, index)
		if err != nil {
			return NewValidationError("index", err.Error())
		}
		p.Services = services
		return nil
	})
}

type ReviewInput struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// AddReview prepends a review by the current user and recomputes the
// aggregate rating as the mean of all reviews rounded to one decimal.
func (s *DirectoryService) AddReview(ctx context.Context, id string, in ReviewInput) (models.Professional, error) {
	var is issues
	if in.Rating < 1 || in.Rating > 5 {
		is.add("rating", "must be between 1 and 5")
	}
	is.required("text", in.Text)
	if len(is) > 0 {
		return models.Professional{}, NewInvalidRecord("review", is)
	}

	author := "Anonymous"
	if s.authors != nil {
		if name := s.authors.DisplayName(); name != "" {
			author = name
		}
	}
	review := models.Review{
		ID:     uuid.NewString(),
		Author: author,
		Date:   s.clock.Today(),
		Rating: in.Rating,
		Text:   strings.TrimSpace(in.Text),
	}

	updated, err := s.Mutate(ctx, id, func(p *models.Professional) error {
		p.Reviews = append([]models.Review{review}, p.Reviews...)
		p.ReviewCount = len(p.Reviews)
		p.Rating = meanRating(p.Reviews)
		return nil
	})
	if err != nil {
		return updated, err
	}

	logger.Info("Service: review added",
		zap.String("professional_id", id),
		zap.Int("rating", in.Rating),
		zap.Float64("aggregate", updated.Rating))
	return updated, nil
}

func meanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// RenameRole rewrites the role of every professional holding old.
func (s *DirectoryService) RenameRole(old, name string) int {
	return s.UpdateWhere(func(p *models.Professional) bool {
		if p.Role != old {
			return false
		}
		p.Role = name
		return true
	})
}
