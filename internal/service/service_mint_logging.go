package service

import (
	"context"
	"time"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/models"
)

type mintLoggingService struct {
	inner MintService
}

// NewMintLoggingService returns a wrapper that logs every mint attempt with
// the request-scoped logger.
func NewMintLoggingService() MintServiceWrapper {
	return &mintLoggingService{}
}

func (l *mintLoggingService) Mint(ctx context.Context, req models.MintRequest) (models.MintResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Info().
		Str("name", req.Name).
		Str("address", req.Address).
		Msg("mint started")

	result, err := l.inner.Mint(ctx, req)
	if err != nil {
		log.Err(err).
			Str("address", req.Address).
			Dur("duration", time.Since(start)).
			Msg("mint failed")
		return result, err
	}

	log.Info().
		Str("address", req.Address).
		Str("queue_id", result.QueueID).
		Dur("duration", time.Since(start)).
		Msg("mint queued")

	return result, nil
}

func (l *mintLoggingService) Wrap(inner MintService) MintService {
	l.inner = inner
	return l
}
