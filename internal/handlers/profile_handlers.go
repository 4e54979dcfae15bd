package handlers

import (
	"net/http"

	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	Profile *service.ProfileService
}

func NewProfileHandler(profile *service.ProfileService) ProfileHandler {
	return ProfileHandler{Profile: profile}
}

func (h ProfileHandler) Routes(r chi.Router) {
	r.Get("/", h.GetProfile)
	r.Put("/", h.UpdateProfile)
}

func (h ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("profile", h.Profile.Get(r.Context())))
}

func (h ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req models.UserProfile
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Profile.Update(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("profile", profile))
}
