package http

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/store"
	"github.com/stretchr/testify/require"
)

// newTestHandler returns a Handler with no services, enough for middleware.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, nil, nil, config.Server{}, logger.Nop())
}

// newMintHandler wires svc with a real upload storage rooted in a fresh
// temp directory, which is returned for inspection.
func newMintHandler(t *testing.T, svc service.MintService, maxUploadSize int64) (*Handler, string) {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewStorages(config.Storage{Files: config.Files{TempDir: dir}}, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(
		&service.Services{MintService: svc},
		storages,
		nil,
		config.Server{MaxUploadSize: maxUploadSize},
		logger.Nop(),
	)
	return h, dir
}

type formFile struct {
	field    string
	fileName string
	data     []byte
}

type formField struct {
	name  string
	value string
}

// buildMultipart encodes fields and files in the given order.
func buildMultipart(t *testing.T, fields []formField, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for _, f := range fields {
		require.NoError(t, mw.WriteField(f.name, f.value))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.fileName)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func requireDirEmpty(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temporary uploads must not outlive the request")
}
