package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"afterReach/internal/logger"

	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// decodeJSON reads a JSON body into dst, answering 415/400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: unsupported content type",
			zap.String("content_type", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst); err != nil {
		logger.Warn("HTTP: invalid JSON body",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// pathIndex parses a non-negative integer path segment.
func pathIndex(w http.ResponseWriter, raw string) (int, bool) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		responseWithError(w, http.StatusBadRequest, "index must be a non-negative integer")
		return 0, false
	}
	return index, true
}
