package models

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrEmptyTag      = errors.New("tag is empty")
	ErrTagOutOfRange = errors.New("tag index out of range")
)

// AddTag returns a copy of tags with the trimmed tag appended. Duplicates are allowed.
func AddTag(tags []string, tag string) ([]string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags, ErrEmptyTag
	}
	out := slices.Clone(tags)
	return append(out, tag), nil
}

// RemoveTag returns a copy of tags without the element at index.
func RemoveTag(tags []string, index int) ([]string, error) {
	if index < 0 || index >= len(tags) {
		return tags, ErrTagOutOfRange
	}
	out := slices.Clone(tags)
	return slices.Delete(out, index, index+1), nil
}
