package handlers

import (
	"net/http"
	"strconv"

	"afterReach/internal/calendar"
	"afterReach/internal/handlers/dto"
	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	Calendar *service.CalendarService
}

func NewCalendarHandler(cal *service.CalendarService) CalendarHandler {
	return CalendarHandler{Calendar: cal}
}

func (h CalendarHandler) Routes(r chi.Router) {
	r.Get("/month", h.GetMonth)
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/", h.PostEvent)
		newLifecycle[models.CalendarEvent](h.Calendar, "event").mount(r)
		r.Put("/{id}", h.UpdateEvent)
	})
}

// ListEvents returns explicit events; ?merged=true appends task-derived ones.
func (h CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	merged, _ := strconv.ParseBool(r.URL.Query().Get("merged"))
	events := h.Calendar.List(r.Context())
	if merged {
		events = h.Calendar.Combined(r.Context())
	}
	responseWithJSON(w, http.StatusOK, toPayload("events", events))
}

func (h CalendarHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.Calendar.Add(r.Context(), req.ToModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: calendar event created",
		zap.String("id", event.ID),
		zap.String("date", event.Date))
	responseWithJSON(w, http.StatusCreated, toPayload("event", event))
}

func (h CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.UpdateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.Calendar.Edit(r.Context(), chi.URLParam(r, "id"), req.Options()...)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("event", event))
}

// GetMonth renders ?year=&month=, defaulting to the current month.
func (h CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	m := h.Calendar.CurrentMonth()
	query := r.URL.Query()
	if query.Get("year") != "" || query.Get("month") != "" {
		year, yearErr := strconv.Atoi(query.Get("year"))
		month, monthErr := strconv.Atoi(query.Get("month"))
		if yearErr != nil || monthErr != nil {
			responseWithError(w, http.StatusBadRequest, "year and month must both be integers")
			return
		}

		var err error
		m, err = calendar.NewMonth(year, month)
		if err != nil {
			logger.Warn("HTTP: invalid month requested", zap.Error(err))
			responseWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	responseWithJSON(w, http.StatusOK, toPayload("calendar", h.Calendar.Month(r.Context(), m)))
}
