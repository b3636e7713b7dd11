// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/nft-creator/internal/mock"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientMintSvc is a helper creating clientMintService with mocks.
func newTestClientMintSvc(t *testing.T) (ClientMintService, *mock.MockCompositor, *mock.MockMintAPIAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	c := mock.NewMockCompositor(ctrl)
	api := mock.NewMockMintAPIAdapter(ctrl)
	return NewClientMintService(c, api), c, api
}

func completeDraft() models.MintDraft {
	return models.MintDraft{
		Background: "bg1.png",
		Shape:      "shape2.png",
		Name:       "Sunset",
		Address:    "0xreceiver",
	}
}

// ── Mint ─────────────────────────────────────────────────────────────────────

func TestClientMintService_Mint_Success(t *testing.T) {
	svc, c, api := newTestClientMintSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		c.EXPECT().Compose("bg1.png", "shape2.png").Return([]byte("png"), nil),
		api.EXPECT().Mint(ctx, models.MintSubmission{
			Image:    []byte("png"),
			FileName: "nft.png",
			Name:     "Sunset",
			Address:  "0xreceiver",
		}).Return(models.MintResult{QueueID: "q-1"}, nil),
	)

	result, err := svc.Mint(ctx, completeDraft())

	require.NoError(t, err)
	assert.Equal(t, "q-1", result.QueueID)
	assert.False(t, svc.InFlight())
}

func TestClientMintService_Mint_IncompleteDraft(t *testing.T) {
	svc, _, _ := newTestClientMintSvc(t)
	draft := completeDraft()
	draft.Shape = ""

	_, err := svc.Mint(context.Background(), draft)

	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestClientMintService_Mint_RejectsConcurrentSubmission(t *testing.T) {
	svc, c, api := newTestClientMintSvc(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	c.EXPECT().Compose(gomock.Any(), gomock.Any()).Return([]byte("png"), nil)
	api.EXPECT().Mint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.MintSubmission) (models.MintResult, error) {
			close(entered)
			<-release
			return models.MintResult{}, nil
		},
	)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Mint(context.Background(), completeDraft())
		done <- err
	}()

	<-entered
	assert.True(t, svc.InFlight())

	_, err := svc.Mint(context.Background(), completeDraft())
	assert.ErrorIs(t, err, ErrMintInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.InFlight())
}

func TestClientMintService_Mint_ComposeFailureReleasesGuard(t *testing.T) {
	svc, c, _ := newTestClientMintSvc(t)
	c.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(nil, errors.New("bad png"))

	_, err := svc.Mint(context.Background(), completeDraft())

	assert.ErrorIs(t, err, ErrComposingImage)
	assert.False(t, svc.InFlight())
}

func TestClientMintService_Mint_ServerError(t *testing.T) {
	svc, c, api := newTestClientMintSvc(t)
	c.EXPECT().Compose(gomock.Any(), gomock.Any()).Return([]byte("png"), nil)
	api.EXPECT().Mint(gomock.Any(), gomock.Any()).Return(models.MintResult{}, errors.New("Missing environment variables"))

	_, err := svc.Mint(context.Background(), completeDraft())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing environment variables")
	assert.False(t, svc.InFlight())
}

// ── catalog & version ────────────────────────────────────────────────────────

func TestClientMintService_Catalog(t *testing.T) {
	svc, c, _ := newTestClientMintSvc(t)
	c.EXPECT().Backgrounds().Return([]string{"bg1.png"})
	c.EXPECT().Shapes().Return([]string{"shape1.png"})

	assert.Equal(t, []string{"bg1.png"}, svc.Backgrounds())
	assert.Equal(t, []string{"shape1.png"}, svc.Shapes())
}

func TestClientMintService_ServerVersion(t *testing.T) {
	svc, _, api := newTestClientMintSvc(t)
	api.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	v, err := svc.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
}
