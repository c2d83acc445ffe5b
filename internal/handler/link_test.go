package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/shortcode"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://short.ly"

func TestCreateLink_Success(t *testing.T) {
	// Arrange
	links := mocks.NewMockLinkService(t)
	links.EXPECT().
		Create(mock.Anything, model.CreateLinkRequest{
			Domain:    "short.ly",
			OriginURL: "https://example.com",
			Gid:       "default",
		}).
		Return(model.Link{
			FullShortURL: "short.ly/abc1234",
			OriginURL:    "https://example.com",
			Gid:          "default",
		}, nil).
		Once()

	h := New(links, nil, zap.NewNop(), nil, testBaseURL)
	body := `{"originUrl":"https://example.com","gid":"default"}`
	req := httptest.NewRequest(http.MethodPost, "/api/short-link/v1/create", strings.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	h.CreateLink(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got model.CreateLinkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "http://short.ly/abc1234", got.FullShortURL)
	assert.Equal(t, "https://example.com", got.OriginURL)
	assert.Equal(t, "default", got.Gid)
}

func TestCreateLink_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "malformed JSON",
			body:       `{"originUrl":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid url",
			body:       `{"originUrl":"ftp://example.com"}`,
			serviceErr: fmt.Errorf("%q: %w", "ftp://example.com", service.ErrInvalidURL),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict",
			body:       `{"originUrl":"https://example.com"}`,
			serviceErr: fmt.Errorf("short.ly/abc1234: %w", service.ErrConflictDetected),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "generation exhausted",
			body:       `{"originUrl":"https://example.com"}`,
			serviceErr: fmt.Errorf("failed to generate short code: %w", shortcode.ErrGenerationExhausted),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "cache down",
			body:       `{"originUrl":"https://example.com"}`,
			serviceErr: fmt.Errorf("failed to check link filter: %w", kv.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unexpected error",
			body:       `{"originUrl":"https://example.com"}`,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			links := mocks.NewMockLinkService(t)
			if tt.serviceErr != nil {
				links.EXPECT().Create(mock.Anything, mock.Anything).Return(model.Link{}, tt.serviceErr).Once()
			}
			h := New(links, nil, zap.NewNop(), nil, testBaseURL)
			req := httptest.NewRequest(http.MethodPost, "/api/short-link/v1/create", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			// Act
			h.CreateLink(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			var got ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.NotEmpty(t, got.Error)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, got.Error, assert.AnError.Error())
			}
		})
	}
}

func withCode(req *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRedirect(t *testing.T) {
	tests := []struct {
		name         string
		link         model.Link
		serviceErr   error
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "found",
			link:         model.Link{OriginURL: "https://example.com/page"},
			wantStatus:   http.StatusFound,
			wantLocation: "https://example.com/page",
		},
		{
			name:       "unknown code",
			serviceErr: fmt.Errorf("short.ly/abc1234: %w", service.ErrLinkNotFound),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			links := mocks.NewMockLinkService(t)
			links.EXPECT().
				Resolve(mock.Anything, "short.ly", "abc1234", model.Visit{RemoteAddr: "10.0.0.1:5000", UserAgent: "curl/8.0"}).
				Return(tt.link, tt.serviceErr).
				Once()
			h := New(links, nil, zap.NewNop(), nil, testBaseURL)

			req := httptest.NewRequest(http.MethodGet, "/abc1234", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			req.Header.Set("User-Agent", "curl/8.0")
			w := httptest.NewRecorder()

			// Act
			h.Redirect(w, withCode(req, "abc1234"))

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}
