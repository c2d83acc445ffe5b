package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AvailabilityResponse answers a username availability check.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// ValidityResponse answers a session check.
type ValidityResponse struct {
	Valid bool `json:"valid"`
}

func (h *Handler) HasUsername(w http.ResponseWriter, req *http.Request) {
	username := req.URL.Query().Get("username")
	if username == "" {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "username is required"})
		return
	}

	available, err := h.users.HasUsername(req.Context(), username)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}

func (h *Handler) Register(w http.ResponseWriter, req *http.Request) {
	var request model.RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode register request", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
		return
	}

	user, err := h.users.Register(req.Context(), request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, user.Snapshot())
}

func (h *Handler) Login(w http.ResponseWriter, req *http.Request) {
	var request model.LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode login request", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
		return
	}

	token, err := h.users.Login(req.Context(), request.Username, request.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.LoginResponse{Token: token})
}

func (h *Handler) CheckLogin(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	valid, err := h.users.CheckLogin(req.Context(), query.Get("username"), query.Get("token"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ValidityResponse{Valid: valid})
}

// Logout drops every session of the user named in the headers.
func (h *Handler) Logout(w http.ResponseWriter, req *http.Request) {
	username := req.Header.Get(middleware.HeaderUsername)
	token := req.Header.Get(middleware.HeaderToken)

	if err := h.users.Logout(req.Context(), username, token); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetUser(w http.ResponseWriter, req *http.Request) {
	user, err := h.users.GetUser(req.Context(), chi.URLParam(req, "username"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// UpdateUser changes the profile of the logged-in user only.
func (h *Handler) UpdateUser(w http.ResponseWriter, req *http.Request) {
	current, ok := middleware.UserFromContext(req.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "login required"})
		return
	}

	var request model.UpdateUserRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode update request", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
		return
	}

	if err := h.users.Update(req.Context(), current.Username, request); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
