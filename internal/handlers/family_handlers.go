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

type FamilyHandler struct {
	Family *service.FamilyService
}

func NewFamilyHandler(family *service.FamilyService) FamilyHandler {
	return FamilyHandler{Family: family}
}

func (h FamilyHandler) Routes(r chi.Router) {
	r.Get("/", h.ListMembers)
	r.Post("/", h.PostMember)
	newLifecycle[models.FamilyMember](h.Family, "member").mount(r)
	r.Get("/{id}", h.GetMember)
	r.Put("/{id}", h.UpdateMember)
	r.Post("/{id}/skills", h.AddSkill)
	r.Delete("/{id}/skills/{index}", h.RemoveSkill)
}

func (h FamilyHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	members := h.Family.Search(r.URL.Query().Get("q"), "")
	responseWithJSON(w, http.StatusOK, toPayload("members", members))
}

func (h FamilyHandler) PostMember(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.CreateFamilyMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.Family.Add(r.Context(), req.ToModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: family member created", zap.String("id", member.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("member", member))
}

func (h FamilyHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.Family.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("member", member))
}

func (h FamilyHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.UpdateFamilyMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.Family.Edit(r.Context(), chi.URLParam(r, "id"), req.Options()...)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("member", member))
}

func (h FamilyHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req dto.TagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.Family.AddSkill(r.Context(), chi.URLParam(r, "id"), req.Value)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("member", member))
}

func (h FamilyHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, chi.URLParam(r, "index"))
	if !ok {
		return
	}

	member, err := h.Family.RemoveSkill(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("member", member))
}
