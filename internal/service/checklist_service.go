package service

import (
	"context"
	"math"
	"strings"

	"afterReach/internal/models"
)

const ResourceLegalTask = "legal task"

// ChecklistService manages the legal/administrative checklist.
type ChecklistService struct {
	*ListController[models.LegalTask, *models.LegalTask]
}

func NewChecklistService() *ChecklistService {
	return &ChecklistService{
		ListController: NewListController[models.LegalTask, *models.LegalTask](ListConfig[models.LegalTask]{
			Resource:  ResourceLegalTask,
			Placement: PlaceHead,
			Validate:  validateLegalTask,
			SearchText: func(t *models.LegalTask) []string {
				return []string{t.Title, t.Description}
			},
		}),
	}
}

func validateLegalTask(t *models.LegalTask) []FieldIssue {
	var is issues
	is.required("title", t.Title)
	is.date("dueDate", t.DueDate)
	return is
}

// Add trims the title and always starts the task as open.
func (s *ChecklistService) Add(ctx context.Context, task models.LegalTask) (models.LegalTask, error) {
	task.Title = strings.TrimSpace(task.Title)
	task.Completed = false
	return s.ListController.Add(ctx, task)
}

type Progress struct {
	Completed  int                `json:"completed"`
	Remaining  int                `json:"remaining"`
	Total      int                `json:"total"`
	Percentage int                `json:"percentage"`
	Next       []models.LegalTask `json:"next"`
}

const nextTasksShown = 3

// Progress summarises the checklist for the dashboard: counts, rounded
// percentage done and the first open tasks in list order.
func (s *ChecklistService) Progress(ctx context.Context) Progress {
	tasks := s.List(ctx)

	p := Progress{Total: len(tasks), Next: []models.LegalTask{}}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
			continue
		}
		if len(p.Next) < nextTasksShown {
			p.Next = append(p.Next, t)
		}
	}
	p.Remaining = p.Total - p.Completed
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}
