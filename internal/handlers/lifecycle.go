package handlers

import (
	"context"
	"net/http"

	"afterReach/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// listState is the delete-confirmation and detail-view state of one list.
type listState[T any] interface {
	Select(ctx context.Context, id string) (T, error)
	Selected(ctx context.Context) (T, bool)
	ClearSelection(ctx context.Context)
	RequestDelete(ctx context.Context, id string) error
	PendingDelete() (string, bool)
	ConfirmDelete(ctx context.Context) (T, error)
	CancelDelete(ctx context.Context)
}

// lifecycle serves the routes every list shares. key names the record in
// response bodies.
type lifecycle[T any] struct {
	state listState[T]
	key   string
}

func newLifecycle[T any](state listState[T], key string) lifecycle[T] {
	return lifecycle[T]{state: state, key: key}
}

// mount registers the shared routes under the list's route.
func (l lifecycle[T]) mount(r chi.Router) {
	r.Get("/selected", l.GetSelected)
	r.Delete("/selected", l.ClearSelected)
	r.Get("/pending-delete", l.GetPendingDelete)
	r.Post("/pending-delete/confirm", l.ConfirmDelete)
	r.Post("/pending-delete/cancel", l.CancelDelete)
	r.Post("/{id}/select", l.Select)
	r.Post("/{id}/delete", l.RequestDelete)
}

func (l lifecycle[T]) Select(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	item, err := l.state.Select(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload(l.key, item))
}

func (l lifecycle[T]) GetSelected(w http.ResponseWriter, r *http.Request) {
	item, ok := l.state.Selected(r.Context())
	if !ok {
		responseWithJSON(w, http.StatusOK, toPayload(l.key, nil))
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload(l.key, item))
}

func (l lifecycle[T]) ClearSelected(w http.ResponseWriter, r *http.Request) {
	l.state.ClearSelection(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (l lifecycle[T]) RequestDelete(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := chi.URLParam(r, "id")
	if err := l.state.RequestDelete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusAccepted, toPayload("pendingDelete", id))
}

func (l lifecycle[T]) GetPendingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := l.state.PendingDelete()
	if !ok {
		responseWithJSON(w, http.StatusOK, toPayload("pendingDelete", nil))
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("pendingDelete", id))
}

func (l lifecycle[T]) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	removed, err := l.state.ConfirmDelete(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: record deleted", zap.String("list", l.key))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", removed))
}

func (l lifecycle[T]) CancelDelete(w http.ResponseWriter, r *http.Request) {
	l.state.CancelDelete(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
