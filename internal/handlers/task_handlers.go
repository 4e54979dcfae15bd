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

type TaskHandler struct {
	Tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) TaskHandler {
	return TaskHandler{Tasks: tasks}
}

func (h TaskHandler) Routes(r chi.Router) {
	r.Get("/", h.ListTasks)
	r.Post("/", h.PostTask)
	newLifecycle[models.PersonalTask](h.Tasks, "task").mount(r)
	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Post("/{id}/toggle", h.ToggleTask)
}

// ListTasks filters by ?q= and ?category=.
func (h TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query()
	tasks := h.Tasks.Search(query.Get("q"), query.Get("category"))
	responseWithJSON(w, http.StatusOK, toPayload("tasks", tasks))
}

func (h TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.CreatePersonalTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.Tasks.Add(r.Context(), req.ToModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: personal task created",
		zap.String("id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))
	responseWithJSON(w, http.StatusCreated, toPayload("task", task))
}

func (h TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.Tasks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}

func (h TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.UpdatePersonalTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.Tasks.Edit(r.Context(), chi.URLParam(r, "id"), req.Options()...)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}

func (h TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	task, err := h.Tasks.ToggleComplete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}
