package handlers

import (
	"net/http"
	"time"

	"afterReach/internal/handlers/dto"
	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChecklistHandler struct {
	Checklist *service.ChecklistService
	Profile   *service.ProfileService
}

func NewChecklistHandler(checklist *service.ChecklistService, profile *service.ProfileService) ChecklistHandler {
	return ChecklistHandler{Checklist: checklist, Profile: profile}
}

func (h ChecklistHandler) Routes(r chi.Router) {
	r.Get("/", h.ListTasks)
	r.Post("/", h.PostTask)
	newLifecycle[models.LegalTask](h.Checklist, "task").mount(r)
	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Post("/{id}/toggle", h.ToggleTask)
}

// Dashboard serves the progress summary and greeting.
func (h ChecklistHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	responseWithJSON(w, http.StatusOK,
		toPayload("progress", h.Checklist.Progress(r.Context())),
		toPayload("profile", h.Profile.Get(r.Context())),
	)
}

func (h ChecklistHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	tasks := h.Checklist.Search(r.URL.Query().Get("q"), "")
	responseWithJSON(w, http.StatusOK, toPayload("tasks", tasks))
}

func (h ChecklistHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.CreateLegalTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.Checklist.Add(r.Context(), req.ToModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: legal task created",
		zap.String("id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))
	responseWithJSON(w, http.StatusCreated, toPayload("task", task))
}

func (h ChecklistHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.Checklist.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}

func (h ChecklistHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.UpdateLegalTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.Checklist.Edit(r.Context(), chi.URLParam(r, "id"), req.Options()...)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}

func (h ChecklistHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	task, err := h.Checklist.ToggleComplete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}
