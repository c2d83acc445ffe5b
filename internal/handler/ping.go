package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping reports whether the database answers.
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.db == nil {
		h.logger.Warn("ping requested but no database is configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.db.Ping(req.Context()); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
