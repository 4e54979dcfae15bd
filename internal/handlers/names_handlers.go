package handlers

import (
	"net/http"
	"net/url"

	"afterReach/internal/handlers/dto"
	"afterReach/internal/logger"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
)

// NamesHandler serves one editable name list (categories or roles).
type NamesHandler struct {
	Names *service.NameListService
	key   string
}

func NewNamesHandler(names *service.NameListService, key string) NamesHandler {
	return NamesHandler{Names: names, key: key}
}

func (h NamesHandler) Routes(r chi.Router) {
	r.Get("/", h.ListNames)
	r.Post("/", h.PostName)
	r.Put("/{name}", h.RenameName)
	r.Delete("/{name}", h.DeleteName)
}

func (h NamesHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload(h.key, h.Names.List(r.Context())))
}

func (h NamesHandler) PostName(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.NameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name, err := h.Names.Add(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusCreated,
		toPayload("name", name),
		toPayload(h.key, h.Names.List(r.Context())))
}

func (h NamesHandler) RenameName(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.NameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name, err := h.Names.Rename(r.Context(), nameParam(r), req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK,
		toPayload("name", name),
		toPayload(h.key, h.Names.List(r.Context())))
}

func (h NamesHandler) DeleteName(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if err := h.Names.Remove(r.Context(), nameParam(r)); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nameParam is the {name} segment, unescaped when the router saw the raw path.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
