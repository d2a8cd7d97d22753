// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzipped    bool
	}{
		{name: "compress response when client accepts gzip", acceptEncoding: "gzip", wantGzipped: true},
		{name: "no compression when client doesn't accept gzip", acceptEncoding: ""},
		{name: "accept-encoding with multiple values including gzip", acceptEncoding: "deflate, gzip, br", wantGzipped: true},
		{name: "accept-encoding with gzip and quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzipped: true},
		{name: "other encodings only", acceptEncoding: "br"},
	}

	const body = `{"labels":["2021","2022"]}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/population-trend", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if !tt.wantGzipped {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

			gz, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestGZip_ImplicitStatusAndSingleHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(" second"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "first second", string(got))
}

func TestGZip_WritersAreReused(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	})
	handler := withGZip(next)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		gz, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(gz)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(got))
	}
}
