package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/db"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func (s *Server) errorJSON(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, errorBody{Error: msg, RequestID: RequestID(r.Context())})
}

func (s *Server) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Internal server error",
		zap.String("request_id", RequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	s.errorJSON(w, r, http.StatusInternalServerError, "internal server error")
}

// storeError maps store sentinels to 404 and 409; anything else is a 500
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, db.ErrShiftNotFound):
		s.errorJSON(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrVersionConflict):
		s.errorJSON(w, r, http.StatusConflict, err.Error())
	default:
		s.internalServerError(w, r, err)
	}
}
