package service

import (
	"context"
	"errors"

	"afterReach/internal/logger"
	repo "afterReach/internal/repository"
	"afterReach/internal/repository/inmemory"

	"go.uber.org/zap"
)

const (
	ListCategories = "category"
	ListRoles      = "role"
)

// RenameHook rewrites records holding old and returns how many changed.
type RenameHook func(old, name string) int

// NameListService manages a user-editable list of unique names, such as task
// categories or professional roles. Deleting a name never touches records;
// renaming runs the registered cascade hooks.
type NameListService struct {
	label    string
	list     *inmemory.NameList
	onRename []RenameHook
}

func NewNameListService(label string, initial ...string) *NameListService {
	return &NameListService{
		label: label,
		list:  inmemory.NewNameList(initial...),
	}
}

func (s *NameListService) OnRename(hook RenameHook) {
	s.onRename = append(s.onRename, hook)
}

func (s *NameListService) mapErr(name string, err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicateName):
		logger.Warn("Service: duplicate name rejected",
			zap.String("list", s.label),
			zap.String("name", name))
		return NewDuplicateName(s.label, name)
	case errors.Is(err, repo.ErrEmptyName):
		return NewValidationError("name", "must not be empty")
	case errors.Is(err, repo.ErrNotFound):
		return NewNotFound(s.label, name)
	}
	return err
}

func (s *NameListService) List(ctx context.Context) []string {
	return s.list.List()
}

func (s *NameListService) Contains(name string) bool {
	return s.list.Contains(name)
}

func (s *NameListService) Add(ctx context.Context, name string) (string, error) {
	added, err := s.list.Add(name)
	if err != nil {
		return "", s.mapErr(name, err)
	}
	logger.Info("Service: name added", zap.String("list", s.label), zap.String("name", added))
	return added, nil
}

// Rename changes old to name in place and cascades to records holding old.
func (s *NameListService) Rename(ctx context.Context, old, name string) (string, error) {
	renamed, err := s.list.Rename(old, name)
	if err != nil {
		return "", s.mapErr(name, err)
	}
	if renamed == old {
		return renamed, nil
	}

	changed := 0
	for _, hook := range s.onRename {
		changed += hook(old, renamed)
	}
	logger.Info("Service: name renamed",
		zap.String("list", s.label),
		zap.String("old", old),
		zap.String("new", renamed),
		zap.Int("records_updated", changed))
	return renamed, nil
}

func (s *NameListService) Remove(ctx context.Context, name string) error {
	if err := s.list.Remove(name); err != nil {
		return s.mapErr(name, err)
	}
	logger.Info("Service: name removed", zap.String("list", s.label), zap.String("name", name))
	return nil
}
