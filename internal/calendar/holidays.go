package calendar

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// Fixed-date holidays only; floating ones such as Thanksgiving are not listed.
var fixedHolidays = map[monthDay]string{
	{time.January, 1}:   "New Year's Day",
	{time.February, 14}: "Valentine's Day",
	{time.March, 17}:    "St. Patrick's Day",
	{time.June, 19}:     "Juneteenth",
	{time.July, 4}:      "Independence Day",
	{time.October, 31}:  "Halloween",
	{time.November, 11}: "Veterans Day",
	{time.December, 24}: "Christmas Eve",
	{time.December, 25}: "Christmas Day",
	{time.December, 31}: "New Year's Eve",
}

// Holiday looks up the fixed holiday on month/day, whatever the year.
func Holiday(month time.Month, day int) (string, bool) {
	name, ok := fixedHolidays[monthDay{month: month, day: day}]
	return name, ok
}
