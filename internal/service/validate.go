package service

import (
	"strings"
	"time"
)

// Clock is the injectable source of "now" for dates and today markers.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func (c Clock) Today() string {
	return c.orDefault()().Format("2006-01-02")
}

type issues []FieldIssue

func (is *issues) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*is = append(*is, FieldIssue{Field: field, Reason: "must not be empty"})
	}
}

// date accepts an empty value; anything else must be YYYY-MM-DD.
func (is *issues) date(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		*is = append(*is, FieldIssue{Field: field, Reason: "must be a YYYY-MM-DD date"})
	}
}

// clock accepts an empty value; anything else must be HH:MM.
func (is *issues) clock(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil || len(value) != 5 {
		*is = append(*is, FieldIssue{Field: field, Reason: "must be an HH:MM time"})
	}
}

func (is *issues) add(field, reason string) {
	*is = append(*is, FieldIssue{Field: field, Reason: reason})
}
