// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/compositor"
	"github.com/MKhiriev/nft-creator/models"
)

const imageFileName = "nft.png"

type clientMintService struct {
	compositor compositor.Compositor
	api        adapter.MintAPIAdapter

	inFlight atomic.Bool
}

// NewClientMintService creates a [ClientMintService] composing with c and
// submitting through api.
func NewClientMintService(c compositor.Compositor, api adapter.MintAPIAdapter) ClientMintService {
	return &clientMintService{compositor: c, api: api}
}

func (s *clientMintService) Backgrounds() []string {
	return s.compositor.Backgrounds()
}

func (s *clientMintService) Shapes() []string {
	return s.compositor.Shapes()
}

func (s *clientMintService) Preview(draft models.MintDraft) ([]byte, error) {
	img, err := s.compositor.Compose(draft.Background, draft.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComposingImage, err)
	}
	return img, nil
}

func (s *clientMintService) Mint(ctx context.Context, draft models.MintDraft) (models.MintResult, error) {
	if !draft.Complete() {
		return models.MintResult{}, ErrMissingRequiredFields
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return models.MintResult{}, ErrMintInFlight
	}
	defer s.inFlight.Store(false)

	img, err := s.Preview(draft)
	if err != nil {
		return models.MintResult{}, err
	}

	return s.api.Mint(ctx, models.MintSubmission{
		Image:    img,
		FileName: imageFileName,
		Name:     draft.Name,
		Address:  draft.Address,
	})
}

func (s *clientMintService) InFlight() bool {
	return s.inFlight.Load()
}

func (s *clientMintService) ServerVersion(ctx context.Context) (string, error) {
	return s.api.Version(ctx)
}
