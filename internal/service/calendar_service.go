package service

import (
	"context"
	"strings"

	"afterReach/internal/calendar"
	"afterReach/internal/logger"
	"afterReach/internal/models"

	"go.uber.org/zap"
)

const ResourceCalendarEvent = "calendar event"

// TaskSource supplies the personal tasks the calendar derives events from.
type TaskSource interface {
	List(ctx context.Context) []models.PersonalTask
}

// CalendarService stores explicit events and merges them with task-derived
// events when a month is rendered. Derived events are view-only.
type CalendarService struct {
	*ListController[models.CalendarEvent, *models.CalendarEvent]
	clock Clock
	tasks TaskSource
}

func NewCalendarService(clock Clock, tasks TaskSource) *CalendarService {
	return &CalendarService{
		ListController: NewListController[models.CalendarEvent, *models.CalendarEvent](ListConfig[models.CalendarEvent]{
			Resource:  ResourceCalendarEvent,
			Placement: PlaceTail,
			Validate:  validateCalendarEvent,
			SearchText: func(e *models.CalendarEvent) []string {
				return []string{e.Title}
			},
			Facet: func(e *models.CalendarEvent) string { return string(e.Type) },
		}),
		clock: clock.orDefault(),
		tasks: tasks,
	}
}

func validateCalendarEvent(e *models.CalendarEvent) []FieldIssue {
	var is issues
	is.required("title", e.Title)
	is.required("date", e.Date)
	is.date("date", e.Date)
	if !e.Type.Valid() {
		is.add("type", "must be one of legal, personal, household, pet, admin")
	}
	is.clock("time", e.Time)
	if calendar.IsTaskDerived(e.ID) {
		is.add("id", "is reserved for task events")
	}
	return is
}

// readOnly rejects ids of task-derived events.
func readOnly(id string) error {
	taskID, ok := calendar.SourceTaskID(id)
	if !ok {
		return nil
	}
	logger.Warn("Service: write to derived event rejected",
		zap.String("event_id", id),
		zap.String("task_id", taskID))
	return NewReadOnlyEvent(id, taskID)
}

func (s *CalendarService) Add(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Type == "" {
		e.Type = models.EventPersonal
	}
	return s.ListController.Add(ctx, e)
}

func (s *CalendarService) Edit(ctx context.Context, id string, opts ...models.Option[models.CalendarEvent]) (models.CalendarEvent, error) {
	if err := readOnly(id); err != nil {
		return models.CalendarEvent{}, err
	}
	return s.ListController.Edit(ctx, id, opts...)
}

func (s *CalendarService) RequestDelete(ctx context.Context, id string) error {
	if err := readOnly(id); err != nil {
		return err
	}
	return s.ListController.RequestDelete(ctx, id)
}

func (s *CalendarService) Select(ctx context.Context, id string) (models.CalendarEvent, error) {
	if err := readOnly(id); err != nil {
		return models.CalendarEvent{}, err
	}
	return s.ListController.Select(ctx, id)
}

func (s *CalendarService) taskList(ctx context.Context) []models.PersonalTask {
	if s.tasks == nil {
		return nil
	}
	return s.tasks.List(ctx)
}

// Combined lists explicit events followed by the events derived from open tasks.
func (s *CalendarService) Combined(ctx context.Context) []models.CalendarEvent {
	return append(s.List(ctx), calendar.TaskEvents(s.taskList(ctx))...)
}

// Month renders m with both event sources and today's marker.
func (s *CalendarService) Month(ctx context.Context, m calendar.Month) calendar.MonthView {
	return calendar.Build(m, s.List(ctx), s.taskList(ctx), s.clock())
}

// CurrentMonth is the month containing the clock's today.
func (s *CalendarService) CurrentMonth() calendar.Month {
	return calendar.MonthOf(s.clock())
}
