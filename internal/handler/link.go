package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateLink handles POST /api/short-link/v1/create. A request without a
// domain is created under the host of the base URL.
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var request model.CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode create link request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
		return
	}

	if strings.TrimSpace(request.Domain) == "" {
		request.Domain = h.baseURL.Host()
	}

	link, err := h.links.Create(req.Context(), request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, model.CreateLinkResponse{
		FullShortURL: h.baseURL.Scheme() + "://" + link.FullShortURL,
		OriginURL:    link.OriginURL,
		Gid:          link.Gid,
	})
}

// Redirect handles GET /{code} for links under the base URL host.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")
	visit := model.Visit{
		RemoteAddr: req.RemoteAddr,
		UserAgent:  req.UserAgent(),
	}

	link, err := h.links.Resolve(req.Context(), h.baseURL.Host(), code, visit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, link.OriginURL, http.StatusFound)
}
