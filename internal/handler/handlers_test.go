package handler

import (
	"testing"

	"github.com/MKhiriev/nft-creator/internal/config"
	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/metrics"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(config.Storage{Files: config.Files{TempDir: t.TempDir()}}, logger.Nop())
	require.NoError(t, err)
	return storages
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestStorages(t), metrics.New(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestStorages(t), nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_NoStorage(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoUploadStorage)
}
