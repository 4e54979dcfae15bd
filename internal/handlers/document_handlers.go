package handlers

import (
	"mime"
	"net/http"

	"afterReach/internal/logger"
	"afterReach/internal/models"
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	Documents *service.DocumentService
}

func NewDocumentHandler(documents *service.DocumentService) DocumentHandler {
	return DocumentHandler{Documents: documents}
}

func (h DocumentHandler) Routes(r chi.Router) {
	r.Get("/", h.ListDocuments)
	r.Post("/", h.UploadDocument)
	r.Get("/counts", h.Counts)
	newLifecycle[models.DocumentItem](h.Documents, "document").mount(r)
	r.Get("/{id}", h.GetDocument)
	r.Get("/{id}/download", h.Download)
}

// ListDocuments filters by ?category=.
func (h DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	docs := h.Documents.ByCategory(r.URL.Query().Get("category"))
	responseWithJSON(w, http.StatusOK, toPayload("documents", docs))
}

func (h DocumentHandler) Counts(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("counts", h.Documents.Counts(r.Context())))
}

func (h DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req service.Upload
	if !decodeJSON(w, r, &req) {
		return
	}

	doc, err := h.Documents.Upload(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: document uploaded",
		zap.String("id", doc.ID),
		zap.String("type", doc.Type),
		zap.String("size", doc.Size))
	responseWithJSON(w, http.StatusCreated, toPayload("document", doc))
}

func (h DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Documents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("document", doc))
}

// Download serves the placeholder text as an attachment named after the document.
func (h DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	doc, content, err := h.Documents.Download(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Name}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		logger.Error("HTTP: failed to write download", err, zap.String("id", doc.ID))
	}
}
