package service

import (
	"context"
	"strings"

	"afterReach/internal/models"
)

const ResourcePersonalTask = "personal task"

// MemberLookup resolves a family member id to the member's current name.
type MemberLookup interface {
	MemberName(id string) (string, bool)
}

// TaskService manages family to-dos. Reads resolve AssigneeID through members,
// falling back to the stored free-text assignee.
type TaskService struct {
	*ListController[models.PersonalTask, *models.PersonalTask]
	clock   Clock
	members MemberLookup
}

func NewTaskService(clock Clock, members MemberLookup) *TaskService {
	return &TaskService{
		ListController: NewListController[models.PersonalTask, *models.PersonalTask](ListConfig[models.PersonalTask]{
			Resource:  ResourcePersonalTask,
			Placement: PlaceHead,
			Validate:  validatePersonalTask,
			SearchText: func(t *models.PersonalTask) []string {
				return []string{t.Title, t.Assignee, t.Category}
			},
			Facet: func(t *models.PersonalTask) string { return t.Category },
		}),
		clock:   clock.orDefault(),
		members: members,
	}
}

func validatePersonalTask(t *models.PersonalTask) []FieldIssue {
	var is issues
	is.required("title", t.Title)
	is.required("category", t.Category)
	is.date("date", t.Date)
	return is
}

// Add fills the defaults of the add form: Unassigned, Personal, and today's date.
func (s *TaskService) Add(ctx context.Context, task models.PersonalTask) (models.PersonalTask, error) {
	task.Title = strings.TrimSpace(task.Title)
	task.Completed = false
	if strings.TrimSpace(task.Assignee) == "" {
		task.Assignee = models.DefaultAssignee
	}
	if strings.TrimSpace(task.Category) == "" {
		task.Category = models.DefaultCategory
	}
	if task.Date == "" {
		task.Date = s.clock.Today()
	}

	created, err := s.ListController.Add(ctx, task)
	if err != nil {
		return created, err
	}
	return s.resolve(created), nil
}

func (s *TaskService) resolve(t models.PersonalTask) models.PersonalTask {
	if t.AssigneeID == "" || s.members == nil {
		return t
	}
	if name, ok := s.members.MemberName(t.AssigneeID); ok {
		t.Assignee = name
	}
	return t
}

func (s *TaskService) resolveAll(tasks []models.PersonalTask) []models.PersonalTask {
	for i := range tasks {
		tasks[i] = s.resolve(tasks[i])
	}
	return tasks
}

func (s *TaskService) Get(ctx context.Context, id string) (models.PersonalTask, error) {
	t, err := s.ListController.Get(ctx, id)
	if err != nil {
		return t, err
	}
	return s.resolve(t), nil
}

func (s *TaskService) List(ctx context.Context) []models.PersonalTask {
	return s.resolveAll(s.ListController.List(ctx))
}

// Search matches against resolved assignee names.
func (s *TaskService) Search(term, category string) []models.PersonalTask {
	term = strings.ToLower(strings.TrimSpace(term))
	res := s.resolveAll(s.ListController.Search("", category))
	if term == "" {
		return res
	}
	out := res[:0]
	for _, t := range res {
		if strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Assignee), term) ||
			strings.Contains(strings.ToLower(t.Category), term) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskService) Edit(ctx context.Context, id string, opts ...models.Option[models.PersonalTask]) (models.PersonalTask, error) {
	t, err := s.ListController.Edit(ctx, id, opts...)
	if err != nil {
		return t, err
	}
	return s.resolve(t), nil
}

func (s *TaskService) ToggleComplete(ctx context.Context, id string) (models.PersonalTask, error) {
	t, err := s.ListController.ToggleComplete(ctx, id)
	if err != nil {
		return t, err
	}
	return s.resolve(t), nil
}

func (s *TaskService) Selected(ctx context.Context) (models.PersonalTask, bool) {
	t, ok := s.ListController.Selected(ctx)
	if !ok {
		return t, false
	}
	return s.resolve(t), true
}

// RenameCategory rewrites the category of every task holding old.
func (s *TaskService) RenameCategory(old, name string) int {
	return s.UpdateWhere(func(t *models.PersonalTask) bool {
		if t.Category != old {
			return false
		}
		t.Category = name
		return true
	})
}

func (s *TaskService) Select(ctx context.Context, id string) (models.PersonalTask, error) {
	t, err := s.ListController.Select(ctx, id)
	if err != nil {
		return t, err
	}
	return s.resolve(t), nil
}

// Overdue lists open tasks dated before today.
func (s *TaskService) Overdue(ctx context.Context) []models.PersonalTask {
	today := s.clock.Today()
	return s.resolveAll(s.Filter(func(t models.PersonalTask) bool {
		return !t.Completed && t.Date != "" && t.Date < today
	}))
}
