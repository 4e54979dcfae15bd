package handlers

import "net/http"

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}
