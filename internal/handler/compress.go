package handler

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Brotli compresses response bodies for clients that accept "br".
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !acceptsBrotli(r) {
			next.ServeHTTP(w, r)
			return
		}

		bw := &brotliResponseWriter{ResponseWriter: w}
		defer bw.Close()
		next.ServeHTTP(bw, r)
	})
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc, _, _ = strings.Cut(strings.TrimSpace(enc), ";")
		if enc == "br" {
			return true
		}
	}
	return false
}

// brotliResponseWriter creates the encoder on the first body write so that
// bodiless responses stay empty.
type brotliResponseWriter struct {
	http.ResponseWriter
	encoder     *brotli.Writer
	wroteHeader bool
	bodiless    bool
}

func (w *brotliResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.bodiless = status == http.StatusNoContent || status == http.StatusNotModified || status < 200
	if !w.bodiless {
		w.Header().Set("Content-Encoding", "br")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *brotliResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.bodiless {
		return w.ResponseWriter.Write(p)
	}
	if w.encoder == nil {
		w.encoder = brotli.NewWriterLevel(w.ResponseWriter, brotli.DefaultCompression)
	}
	return w.encoder.Write(p)
}

func (w *brotliResponseWriter) Close() error {
	if w.encoder == nil {
		return nil
	}
	return w.encoder.Close()
}
