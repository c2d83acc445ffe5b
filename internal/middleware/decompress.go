package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// gzipBody closes both the gzip stream and the original body.
type gzipBody struct {
	*gzip.Reader
	body io.ReadCloser
}

func (b *gzipBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		_ = b.body.Close()
		return err
	}
	return b.body.Close()
}

// Decompress transparently inflates request bodies sent with
// Content-Encoding: gzip. Responses are compressed by chi's Compress.
func Decompress(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				logger.Warn("failed to decompress request body",
					zap.String("uri", r.RequestURI),
					zap.Error(err),
				)
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &gzipBody{Reader: zr, body: r.Body}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1

			next.ServeHTTP(w, r)
		})
	}
}
