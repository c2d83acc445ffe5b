package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestPing_Success(t *testing.T) {
	mockDB := mocks.NewMockDatabase(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(nil).Once()

	h := New(nil, nil, zap.NewNop(), mockDB, testBaseURL)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	h.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPing_DatabaseError(t *testing.T) {
	mockDB := mocks.NewMockDatabase(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()

	h := New(nil, nil, zap.NewNop(), mockDB, testBaseURL)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	h.Ping(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPing_DatabaseNotConfigured(t *testing.T) {
	h := New(nil, nil, zap.NewNop(), nil, testBaseURL)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	h.Ping(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
