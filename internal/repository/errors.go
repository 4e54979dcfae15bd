package repository

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrDuplicateName = errors.New("name already exists")
	ErrEmptyName     = errors.New("name is empty")
)
