package service

import (
	"context"
	"time"

	"github.com/MKhiriev/nft-creator/models"
)

// MintRecorder receives mint measurements. It is implemented by
// *metrics.Metrics.
type MintRecorder interface {
	RecordMint(success bool, duration time.Duration)
	RecordUploadSize(size int64)
}

// sizer is implemented by upload sources that know their size without
// reading themselves.
type sizer interface {
	Size() int64
}

type mintMetricsService struct {
	inner    MintService
	recorder MintRecorder
}

// NewMintMetricsService returns a wrapper that records the outcome, duration
// and image size of every mint attempt.
func NewMintMetricsService(recorder MintRecorder) MintServiceWrapper {
	return &mintMetricsService{recorder: recorder}
}

func (m *mintMetricsService) Mint(ctx context.Context, req models.MintRequest) (models.MintResult, error) {
	if s, ok := req.Image.(sizer); ok {
		m.recorder.RecordUploadSize(s.Size())
	}

	start := time.Now()
	result, err := m.inner.Mint(ctx, req)
	m.recorder.RecordMint(err == nil, time.Since(start))

	return result, err
}

func (m *mintMetricsService) Wrap(inner MintService) MintService {
	m.inner = inner
	return m
}
