package handlers

import (
	"errors"
	"net/http"

	"afterReach/internal/logger"
	"afterReach/internal/service"

	"go.uber.org/zap"
)

func handleBusinessError(w http.ResponseWriter, err error) bool {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		return false
	}

	statusCode := mapBusinessErrorToHTTP(businessErr.Code)
	logger.Warn("HTTP: business error",
		zap.String("error_code", businessErr.Code),
		zap.String("message", businessErr.Message),
		zap.Int("http_status", statusCode))

	responseWithJSON(w, statusCode,
		toPayload("error", businessErr.Code),
		toPayload("message", businessErr.Message),
		toPayload("details", businessErr.Details),
	)
	return true
}

// handleServiceError renders err as a business error, or as a 500.
func handleServiceError(w http.ResponseWriter, err error) {
	if handleBusinessError(w, err) {
		return
	}
	logger.Error("HTTP: service error", err)
	responseWithError(w, http.StatusInternalServerError, "internal error")
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodeDuplicateName, service.CodeNoPendingDelete:
		return http.StatusConflict
	case service.CodeReadOnlyEvent:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
