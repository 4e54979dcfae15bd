package inmemory

import (
	"slices"
	"strings"
	"sync"

	repo "afterReach/internal/repository"
)

// NameList is an ordered set of unique, case-sensitive, trimmed names.
type NameList struct {
	names []string
	mtx   *sync.RWMutex
}

func NewNameList(initial ...string) *NameList {
	l := &NameList{mtx: &sync.RWMutex{}}
	for _, name := range initial {
		_, _ = l.Add(name)
	}
	return l
}

func (l *NameList) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", repo.ErrEmptyName
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	if slices.Contains(l.names, name) {
		return "", repo.ErrDuplicateName
	}
	l.names = append(l.names, name)
	return name, nil
}

// Rename replaces old with the trimmed new name at the same position.
// Renaming to the same name is a no-op.
func (l *NameList) Rename(old, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", repo.ErrEmptyName
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	ind := slices.Index(l.names, old)
	if ind < 0 {
		return "", repo.ErrNotFound
	}
	if name == old {
		return name, nil
	}
	if slices.Contains(l.names, name) {
		return "", repo.ErrDuplicateName
	}
	l.names[ind] = name
	return name, nil
}

func (l *NameList) Remove(name string) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	ind := slices.Index(l.names, name)
	if ind < 0 {
		return repo.ErrNotFound
	}
	l.names = slices.Delete(l.names, ind, ind+1)
	return nil
}

func (l *NameList) Contains(name string) bool {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	return slices.Contains(l.names, name)
}

func (l *NameList) List() []string {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	return slices.Clone(l.names)
}
