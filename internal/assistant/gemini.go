// Package assistant talks to the Gemini generateContent REST endpoint on
// behalf of the chat service.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"afterReach/internal/logger"
	"afterReach/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// SystemInstruction frames every conversation.
const SystemInstruction = `You are Aura, a compassionate, gentle, and organized AI assistant for the "AfterReach" application.
Your users are people who have recently lost a loved one and are navigating the complex logistical, legal, and emotional landscape of grief.

Tone Guidelines:
- Be warm, patient, and non-judgmental.
- Use soothing language but remain clear and practical.
- Be concise but not abrupt.

Boundaries:
- You are NOT a lawyer, doctor, or therapist.
- If asked for legal advice, state clearly: "I cannot provide legal advice. Please consult with a qualified elder law attorney or probate specialist found in the AfterReach Directory."
- If asked for medical advice or if the user expresses self-harm, direct them to appropriate emergency resources or professionals immediately.

Role:
- Help users organize tasks.
- Explain terms related to funerals, probate, and estate planning in simple English.
- Offer emotional validation ("It is normal to feel overwhelmed").`

var ErrNoAPIKey = errors.New("assistant API key is not configured")

// StatusError is a non-200 answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini returned HTTP %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

func NewClient(baseURL, model, apiKey string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generationConfig struct {
	ThinkingConfig thinkingConfig `json:"thinkingConfig"`
}

type generateRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// contents converts the history into API turns. Messages before the first
// user turn (the greeting) are not part of the model conversation.
func contents(history []models.ChatMessage, text string) []content {
	out := make([]content, 0, len(history)+1)
	started := false
	for _, m := range history {
		if m.Role == models.ChatRoleUser {
			started = true
		}
		if !started {
			continue
		}
		out = append(out, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	return append(out, content{Role: string(models.ChatRoleUser), Parts: []part{{Text: text}}})
}

// Reply sends one generateContent request and returns the concatenated text
// of the first candidate. An empty string means the model produced no text.
func (c *Client) Reply(ctx context.Context, history []models.ChatMessage, text string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: SystemInstruction}}},
		Contents:          contents(history, text),
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	var sb strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, p := range parsed.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}

	logger.Debug("Assistant: reply received",
		zap.String("model", c.model),
		zap.Int("turns", len(history)+1),
		zap.Duration("elapsed", time.Since(start)))
	return sb.String(), nil
}
