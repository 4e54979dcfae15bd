package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"afterReach/internal/logger"
	"afterReach/internal/models"
	repo "afterReach/internal/repository"
	"afterReach/internal/repository/inmemory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entity is the pointer side of a list record.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(string)
}

type completable interface {
	SetCompleted(bool)
	IsCompleted() bool
}

type Placement int

const (
	PlaceHead Placement = iota // newest first: tasks, documents
	PlaceTail                  // directory order: people, events
)

// FacetAll disables the exact-match facet filter of Search.
const FacetAll = "All"

type ListConfig[T any] struct {
	Resource  string
	Placement Placement
	Validate  func(*T) []FieldIssue
	// SearchText lists the fields Search matches against.
	SearchText func(*T) []string
	// Facet is the category/role value Search filters on exactly.
	Facet func(*T) string
}

// ListController owns one entity collection plus its two small pieces of
// view state: the record waiting for delete confirmation and the record open
// in a detail view. Both are stored as ids and resolved on read.
type ListController[T any, PT Entity[T]] struct {
	cfg   ListConfig[T]
	store *inmemory.Collection[T]
	newID func() string

	mtx           sync.Mutex
	pendingDelete string
	selected      string
}

func NewListController[T any, PT Entity[T]](cfg ListConfig[T]) *ListController[T, PT] {
	return &ListController[T, PT]{
		cfg:   cfg,
		store: inmemory.NewCollection[T](),
		newID: uuid.NewString,
	}
}

func (c *ListController[T, PT]) Resource() string {
	return c.cfg.Resource
}

func (c *ListController[T, PT]) validate(item *T) error {
	if c.cfg.Validate == nil {
		return nil
	}
	if issues := c.cfg.Validate(item); len(issues) > 0 {
		return NewInvalidRecord(c.cfg.Resource, issues)
	}
	return nil
}

func (c *ListController[T, PT]) notFound(id string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		logger.Info("Service: record not found",
			zap.String("resource", c.cfg.Resource),
			zap.String("target_id", id))
		return NewNotFound(c.cfg.Resource, id)
	}
	return err
}

func (c *ListController[T, PT]) insert(id string, item T) error {
	if c.cfg.Placement == PlaceHead {
		return c.store.Prepend(id, item)
	}
	return c.store.Append(id, item)
}

// Add assigns a fresh id and inserts the record at the list's placement.
func (c *ListController[T, PT]) Add(ctx context.Context, item T) (T, error) {
	PT(&item).SetID(c.newID())

	if err := c.validate(&item); err != nil {
		logger.Warn("Service: validation failed",
			zap.String("resource", c.cfg.Resource),
			zap.Error(err))
		var zero T
		return zero, err
	}

	id := PT(&item).GetID()
	if err := c.insert(id, item); err != nil {
		var zero T
		return zero, err
	}

	logger.Info("Service: record created",
		zap.String("resource", c.cfg.Resource),
		zap.String("id", id))
	return item, nil
}

// Load inserts records in the given order at the tail, keeping their ids.
// Records without an id get a fresh one.
func (c *ListController[T, PT]) Load(items ...T) error {
	for _, item := range items {
		if PT(&item).GetID() == "" {
			PT(&item).SetID(c.newID())
		}
		if err := c.validate(&item); err != nil {
			return err
		}
		if err := c.store.Append(PT(&item).GetID(), item); err != nil {
			return err
		}
	}
	return nil
}

func (c *ListController[T, PT]) Get(ctx context.Context, id string) (T, error) {
	item, err := c.store.Get(id)
	if err != nil {
		return item, c.notFound(id, err)
	}
	return item, nil
}

// Lookup is Get without a NotFound error, for read-side joins.
func (c *ListController[T, PT]) Lookup(id string) (T, bool) {
	item, err := c.store.Get(id)
	return item, err == nil
}

func (c *ListController[T, PT]) List(ctx context.Context) []T {
	return c.store.List()
}

func (c *ListController[T, PT]) Len() int {
	return c.store.Len()
}

func (c *ListController[T, PT]) Filter(keep func(T) bool) []T {
	return c.store.Filter(keep)
}

// Search keeps records whose search fields contain term, ignoring case, and
// whose facet equals facet exactly. Empty term or facet ("All") match everything.
func (c *ListController[T, PT]) Search(term, facet string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	return c.store.Filter(func(item T) bool {
		if facet != "" && facet != FacetAll && c.cfg.Facet != nil && c.cfg.Facet(&item) != facet {
			return false
		}
		if term == "" || c.cfg.SearchText == nil {
			return true
		}
		return slices.ContainsFunc(c.cfg.SearchText(&item), func(field string) bool {
			return strings.Contains(strings.ToLower(field), term)
		})
	})
}

// Edit applies opts to the record. Nil options are skipped, the id never
// changes, and an edit that leaves the record invalid is dropped whole.
func (c *ListController[T, PT]) Edit(ctx context.Context, id string, opts ...models.Option[T]) (T, error) {
	updated, err := c.update(id, func(item *T) error {
		for _, opt := range opts {
			if opt != nil {
				opt(item)
			}
		}
		PT(item).SetID(id)
		return c.validate(item)
	})
	if err != nil {
		return updated, err
	}

	logger.Info("Service: record updated",
		zap.String("resource", c.cfg.Resource),
		zap.String("id", id))
	return updated, nil
}

// Mutate is Edit for service-internal changes that may fail on their own terms.
func (c *ListController[T, PT]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	return c.update(id, func(item *T) error {
		if err := fn(item); err != nil {
			return err
		}
		PT(item).SetID(id)
		return c.validate(item)
	})
}

func (c *ListController[T, PT]) update(id string, fn func(*T) error) (T, error) {
	updated, err := c.store.Update(id, fn)
	if err != nil {
		return updated, c.notFound(id, err)
	}
	return updated, nil
}

// ToggleComplete flips the completed flag and nothing else.
func (c *ListController[T, PT]) ToggleComplete(ctx context.Context, id string) (T, error) {
	return c.update(id, func(item *T) error {
		task, ok := any(PT(item)).(completable)
		if !ok {
			return NewBusinessError(CodeValidation, c.cfg.Resource+" has no completed flag")
		}
		task.SetCompleted(!task.IsCompleted())
		return nil
	})
}

// UpdateWhere rewrites every record fn reports as changed. Used for rename cascades.
func (c *ListController[T, PT]) UpdateWhere(fn func(*T) bool) int {
	return c.store.UpdateWhere(fn)
}

// RequestDelete marks id as waiting for confirmation, replacing any earlier request.
func (c *ListController[T, PT]) RequestDelete(ctx context.Context, id string) error {
	if !c.store.Has(id) {
		return c.notFound(id, repo.ErrNotFound)
	}

	c.mtx.Lock()
	c.pendingDelete = id
	c.mtx.Unlock()

	logger.Info("Service: delete requested",
		zap.String("resource", c.cfg.Resource),
		zap.String("id", id))
	return nil
}

func (c *ListController[T, PT]) PendingDelete() (string, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.pendingDelete, c.pendingDelete != ""
}

// ConfirmDelete removes the pending record and closes its detail view if open.
func (c *ListController[T, PT]) ConfirmDelete(ctx context.Context) (T, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	var zero T
	id := c.pendingDelete
	if id == "" {
		return zero, NewNoPendingDelete(c.cfg.Resource)
	}
	c.pendingDelete = ""

	removed, err := c.store.Remove(id)
	if err != nil {
		return zero, c.notFound(id, err)
	}
	if c.selected == id {
		c.selected = ""
	}

	logger.Info("Service: record deleted",
		zap.String("resource", c.cfg.Resource),
		zap.String("id", id))
	return removed, nil
}

func (c *ListController[T, PT]) CancelDelete(ctx context.Context) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.pendingDelete = ""
}

// Select opens id in the detail view.
func (c *ListController[T, PT]) Select(ctx context.Context, id string) (T, error) {
	item, err := c.store.Get(id)
	if err != nil {
		return item, c.notFound(id, err)
	}

	c.mtx.Lock()
	c.selected = id
	c.mtx.Unlock()
	return item, nil
}

// Selected returns the current copy of the record open in the detail view.
func (c *ListController[T, PT]) Selected(ctx context.Context) (T, bool) {
	c.mtx.Lock()
	id := c.selected
	c.mtx.Unlock()

	if id == "" {
		var zero T
		return zero, false
	}
	item, err := c.store.Get(id)
	if err != nil {
		return item, false
	}
	return item, true
}

func (c *ListController[T, PT]) ClearSelection(ctx context.Context) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.selected = ""
}
