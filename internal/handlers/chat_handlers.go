package handlers

import (
	"context"
	"net/http"
	"time"

	"afterReach/internal/handlers/dto"
	"afterReach/internal/logger"
	"afterReach/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatService interface {
	History(ctx context.Context) []models.ChatMessage
	Send(ctx context.Context, text string) (models.ChatMessage, error)
	Clear(ctx context.Context) []models.ChatMessage
}

type ChatHandler struct {
	Chat ChatService
}

func NewChatHandler(chat ChatService) ChatHandler {
	return ChatHandler{Chat: chat}
}

func (h ChatHandler) Routes(r chi.Router) {
	r.Get("/", h.GetHistory)
	r.Delete("/", h.ClearHistory)
	r.Post("/messages", h.PostMessage)
}

func (h ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("messages", h.Chat.History(r.Context())))
}

func (h ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.Chat.Send(r.Context(), req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: chat reply sent",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK,
		toPayload("reply", reply),
		toPayload("messages", h.Chat.History(r.Context())))
}

func (h ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	responseWithJSON(w, http.StatusOK, toPayload("messages", h.Chat.Clear(r.Context())))
}
