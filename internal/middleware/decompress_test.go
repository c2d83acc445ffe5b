package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gzipString(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	const payload = `{"originUrl":"https://example.com"}`

	tests := []struct {
		name       string
		body       io.Reader
		encoding   string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "gzip body is inflated",
			body:       bytes.NewReader(gzipString(t, payload)),
			encoding:   "gzip",
			wantStatus: http.StatusOK,
			wantBody:   payload,
		},
		{
			name:       "plain body passes through",
			body:       strings.NewReader(payload),
			wantStatus: http.StatusOK,
			wantBody:   payload,
		},
		{
			name:       "malformed gzip body",
			body:       strings.NewReader("not gzip at all"),
			encoding:   "gzip",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				got = string(data)
				assert.Empty(t, r.Header.Get("Content-Encoding"))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/short-link/v1/create", tt.body)
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			w := httptest.NewRecorder()

			// Act
			Decompress(zap.NewNop())(next).ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
