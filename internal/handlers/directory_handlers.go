package handlers

import (
	"net/http"

	"afterReach/internal/handlers/dto"
	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	Directory *service.DirectoryService
}

func NewDirectoryHandler(directory *service.DirectoryService) DirectoryHandler {
	return DirectoryHandler{Directory: directory}
}

func (h DirectoryHandler) Routes(r chi.Router) {
	r.Get("/", h.ListProfessionals)
	r.Post("/", h.PostProfessional)
	newLifecycle[models.Professional](h.Directory, "professional").mount(r)
	r.Get("/{id}", h.GetProfessional)
	r.Put("/{id}", h.UpdateProfessional)
	r.Post("/{id}/services", h.AddService)
	r.Delete("/{id}/services/{index}", h.RemoveService)
	r.Post("/{id}/reviews", h.PostReview)
}

// ListProfessionals filters by ?q= and ?role=.
func (h DirectoryHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query()
	professionals := h.Directory.Search(query.Get("q"), query.Get("role"))
	responseWithJSON(w, http.StatusOK, toPayload("professionals", professionals))
}

func (h DirectoryHandler) PostProfessional(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.CreateProfessionalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Directory.Add(r.Context(), req.ToModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: professional created", zap.String("id", p.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("professional", p))
}

func (h DirectoryHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	p, err := h.Directory.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("professional", p))
}

func (h DirectoryHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.UpdateProfessionalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Directory.Edit(r.Context(), chi.URLParam(r, "id"), req.Options()...)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("professional", p))
}

func (h DirectoryHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req dto.TagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Directory.AddService(r.Context(), chi.URLParam(r, "id"), req.Value)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("professional", p))
}

func (h DirectoryHandler) RemoveService(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, chi.URLParam(r, "index"))
	if !ok {
		return
	}

	p, err := h.Directory.RemoveService(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("professional", p))
}

func (h DirectoryHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req service.ReviewInput
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Directory.AddReview(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, toPayload("professional", p))
}
