// Package calendar builds the month view: a Sunday-first grid and per-day event
// lists that merge stored events with events derived from open personal tasks.
package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Month identifies a displayed calendar month. Day is irrelevant for navigation.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month must be within 1..12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return Month{}, fmt.Errorf("year must be within 1..9999, got %d", year)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn counts the days of the month, leap years included.
func (m Month) DaysIn() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// FirstWeekday is the weekday of day 1, 0 for Sunday through 6 for Saturday.
func (m Month) FirstWeekday() int {
	return int(m.first().Weekday())
}

// Date formats day of the month as YYYY-MM-DD.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Cell is one square of the 7-column grid; leading cells before day 1 are blank.
type Cell struct {
	Blank bool `json:"blank"`
	Day   int  `json:"day,omitempty"`
}

// Grid lays the month out row-major: FirstWeekday blanks, then one cell per day.
func Grid(m Month) []Cell {
	blanks := m.FirstWeekday()
	days := m.DaysIn()

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day})
	}
	return cells
}
