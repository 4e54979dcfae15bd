package calendar

import (
	"slices"
	"strings"
	"time"

	"afterReach/internal/models"
)

// TaskEventPrefix marks ids of events derived from personal tasks. Such events
// exist only on read and are never written back.
const TaskEventPrefix = "task-"

func IsTaskDerived(id string) bool {
	return strings.HasPrefix(id, TaskEventPrefix)
}

// SourceTaskID returns the personal task id behind a derived event id.
func SourceTaskID(eventID string) (string, bool) {
	if !IsTaskDerived(eventID) {
		return "", false
	}
	return strings.TrimPrefix(eventID, TaskEventPrefix), true
}

// TaskEvents derives one untimed pseudo-event per open personal task that has a date.
func TaskEvents(tasks []models.PersonalTask) []models.CalendarEvent {
	res := make([]models.CalendarEvent, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed || t.Date == "" {
			continue
		}
		res = append(res, models.CalendarEvent{
			ID:    TaskEventPrefix + t.ID,
			Date:  t.Date,
			Title: t.Title,
			Type:  models.EventType(strings.ToLower(t.Category)),
		})
	}
	return res
}

// SortDay orders a day's events by HH:MM ascending with untimed events last.
// The sort is stable, so source order breaks ties.
func SortDay(events []models.CalendarEvent) {
	slices.SortStableFunc(events, func(a, b models.CalendarEvent) int {
		switch {
		case a.Time == "" && b.Time == "":
			return 0
		case a.Time == "":
			return 1
		case b.Time == "":
			return -1
		}
		return strings.Compare(a.Time, b.Time)
	})
}

type Day struct {
	Day     int                    `json:"day"`
	Date    string                 `json:"date"`
	Today   bool                   `json:"today"`
	Holiday string                 `json:"holiday,omitempty"`
	Events  []models.CalendarEvent `json:"events"`
}

type MonthView struct {
	Month        Month  `json:"current"`
	MonthName    string `json:"monthName"`
	DaysInMonth  int    `json:"daysInMonth"`
	FirstWeekday int    `json:"firstWeekday"`
	Cells        []Cell `json:"cells"`
	Days         []Day  `json:"days"`
	Prev         Month  `json:"prev"`
	Next         Month  `json:"next"`
}

// Build reconciles stored events, task-derived events and the holiday table
// into one view of m. now only drives the Today marker.
func Build(m Month, events []models.CalendarEvent, tasks []models.PersonalTask, now time.Time) MonthView {
	byDate := make(map[string][]models.CalendarEvent)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	for _, e := range TaskEvents(tasks) {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	nowYear, nowMonth, nowDay := now.Date()
	daysIn := m.DaysIn()

	days := make([]Day, 0, daysIn)
	for day := 1; day <= daysIn; day++ {
		date := m.Date(day)

		dayEvents := byDate[date]
		if dayEvents == nil {
			dayEvents = []models.CalendarEvent{}
		}
		SortDay(dayEvents)

		holiday, _ := Holiday(m.Month, day)
		days = append(days, Day{
			Day:     day,
			Date:    date,
			Today:   nowYear == m.Year && nowMonth == m.Month && nowDay == day,
			Holiday: holiday,
			Events:  dayEvents,
		})
	}

	return MonthView{
		Month:        m,
		MonthName:    m.Month.String(),
		DaysInMonth:  daysIn,
		FirstWeekday: m.FirstWeekday(),
		Cells:        Grid(m),
		Days:         days,
		Prev:         m.Prev(),
		Next:         m.Next(),
	}
}

// EventsOn returns the reconciled event list for a single date.
func (v MonthView) EventsOn(day int) []models.CalendarEvent {
	if day < 1 || day > len(v.Days) {
		return nil
	}
	return v.Days[day-1].Events
}
