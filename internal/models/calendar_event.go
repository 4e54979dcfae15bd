package models

type EventType string

const (
	EventLegal     EventType = "legal"
	EventPersonal  EventType = "personal"
	EventHousehold EventType = "household"
	EventPet       EventType = "pet"
	EventAdmin     EventType = "admin"
)

func (t EventType) Valid() bool {
	switch t {
	case EventLegal, EventPersonal, EventHousehold, EventPet, EventAdmin:
		return true
	}
	return false
}

// CalendarEvent is a day-granularity entry. Date is YYYY-MM-DD, Time is HH:MM or empty.
type CalendarEvent struct {
	ID    string    `json:"id" yaml:"id"`
	Date  string    `json:"date" yaml:"date"`
	Title string    `json:"title" yaml:"title"`
	Type  EventType `json:"type" yaml:"type"`
	Time  string    `json:"time,omitempty" yaml:"time"`
}

func (e *CalendarEvent) GetID() string   { return e.ID }
func (e *CalendarEvent) SetID(id string) { e.ID = id }
