// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMintAPIAdapter creates an httpMintAPIAdapter pointed at the test server.
func newTestMintAPIAdapter(t *testing.T, serverURL string) MintAPIAdapter {
	t.Helper()
	a, err := NewHTTPMintAPIAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── NewHTTPMintAPIAdapter ────────────────────────────────────────────────────

func TestNewHTTPMintAPIAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPMintAPIAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Mint ─────────────────────────────────────────────────────────────────────

func TestMint_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mintNFT", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Sunset", r.FormValue("name"))
		assert.Equal(t, "0xreceiver", r.FormValue("address"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "nft.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"queueId":"q-7"}}`))
	}))
	defer srv.Close()

	a := newTestMintAPIAdapter(t, srv.URL)
	result, err := a.Mint(context.Background(), models.MintSubmission{
		Image:   []byte("png"),
		Name:    "Sunset",
		Address: "0xreceiver",
	})

	require.NoError(t, err)
	assert.Equal(t, "q-7", result.QueueID)
}

func TestMint_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"missing fields", http.StatusBadRequest, "Missing required fields", ErrBadRequest, "Missing required fields"},
		{"missing config", http.StatusInternalServerError, "Missing environment variables", ErrInternalServerError, "Missing environment variables"},
		{"downstream failure", http.StatusInternalServerError, `{"error":"relay is down"}`, ErrInternalServerError, "relay is down"},
		{"method", http.StatusMethodNotAllowed, "Method not allowed", ErrMethodNotAllowed, "Method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestMintAPIAdapter(t, srv.URL)
			_, err := a.Mint(context.Background(), models.MintSubmission{Image: []byte("x"), Name: "n", Address: "a"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestMintAPIAdapter(t, srv.URL)
	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestVersion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a := newTestMintAPIAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}
