package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"afterReach/internal/logger"
	"afterReach/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	WelcomeMessage  = "Hello. I am Aura. I am here to help you organize tasks, explain complex terms, or simply listen if you feel overwhelmed. How can I support you right now?"
	FallbackMessage = "I'm having trouble connecting right now. Please check your connection and try again."
	EmptyReply      = "I'm sorry, I couldn't generate a response at this time."
)

const defaultChatTimeout = 20 * time.Second

// Assistant produces the model's reply to text given the conversation so far.
type Assistant interface {
	Reply(ctx context.Context, history []models.ChatMessage, text string) (string, error)
}

// ChatService keeps one conversation with the assistant. Assistant failures
// never surface as errors; they become the fallback reply.
type ChatService struct {
	assistant Assistant
	timeout   time.Duration
	clock     Clock

	mtx     sync.Mutex
	history []models.ChatMessage
}

func NewChatService(assistant Assistant, timeout time.Duration, clock Clock) *ChatService {
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	s := &ChatService{
		assistant: assistant,
		timeout:   timeout,
		clock:     clock.orDefault(),
	}
	s.history = []models.ChatMessage{s.message(models.ChatRoleModel, WelcomeMessage)}
	return s
}

func (s *ChatService) message(role models.ChatRole, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.clock(),
	}
}

func (s *ChatService) History(ctx context.Context) []models.ChatMessage {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Send appends the user's message, asks the assistant once and appends its
// answer. It returns the model message that was appended.
func (s *ChatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, NewValidationError("text", "must not be empty")
	}

	s.mtx.Lock()
	prior := make([]models.ChatMessage, len(s.history))
	copy(prior, s.history)
	s.history = append(s.history, s.message(models.ChatRoleUser, text))
	s.mtx.Unlock()

	replyText := s.ask(ctx, prior, text)
	reply := s.message(models.ChatRoleModel, replyText)

	s.mtx.Lock()
	s.history = append(s.history, reply)
	s.mtx.Unlock()

	return reply, nil
}

func (s *ChatService) ask(ctx context.Context, prior []models.ChatMessage, text string) string {
	if s.assistant == nil {
		return FallbackMessage
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.assistant.Reply(ctx, prior, text)
	if err != nil {
		logger.Error("Service: assistant call failed", err,
			zap.Duration("elapsed", time.Since(start)))
		return FallbackMessage
	}
	if strings.TrimSpace(reply) == "" {
		logger.Warn("Service: assistant returned an empty reply")
		return EmptyReply
	}
	return reply
}

// Clear starts a new conversation with a fresh welcome message.
func (s *ChatService) Clear(ctx context.Context) []models.ChatMessage {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.history = []models.ChatMessage{s.message(models.ChatRoleModel, WelcomeMessage)}
	logger.Info("Service: chat cleared")
	return []models.ChatMessage{s.history[0]}
}
