package utils

import (
	"encoding/json"
	"net/http"
)

// The API speaks the same envelope for every error: {"detail": ...} where
// detail is either a plain message or a structured object. Successful
// responses are the resource representation itself, deletes answer
// {"ok": true}.

type detailResponse struct {
	Detail any `json:"detail"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// ResponseJSON writes any payload with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with the resource body
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created with the resource body
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 200 OK with {"ok": true}, used by delete endpoints
func ResponseDeleted(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusOK, okResponse{OK: true})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail any) {
	ResponseJSON(w, http.StatusBadRequest, detailResponse{Detail: detail})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusUnauthorized, detailResponse{Detail: detail})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusForbidden, detailResponse{Detail: detail})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusNotFound, detailResponse{Detail: detail})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, detailResponse{Detail: detail})
}
