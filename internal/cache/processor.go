package cache

import (
	"context"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/logger"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/metrics"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// cachedProcessor decorates a pipeline.Processor with result caching.
type cachedProcessor struct {
	next  pipeline.Processor
	cache Cache
	m     *metrics.Metrics
	log   *logger.Logger
}

// Wrap returns a Processor that serves repeated requests from the cache.
// The metrics argument may be nil. Cache write failures are logged and
// otherwise ignored; the computed result is still returned.
func Wrap(next pipeline.Processor, c Cache, m *metrics.Metrics, log *logger.Logger) pipeline.Processor {
	if log == nil {
		log = logger.Nop()
	}
	return &cachedProcessor{next: next, cache: c, m: m, log: log}
}

// Process implements pipeline.Processor.
func (p *cachedProcessor) Process(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, error) {
	if result, ok := p.cache.Get(ctx, req); ok {
		if p.m != nil {
			p.m.IncCacheHits()
		}
		return result, nil
	}

	result, err := p.next.Process(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, req, result); err != nil {
		p.log.Warn().Err(err).Msg("Failed to cache processed result")
	}

	return result, nil
}

var _ pipeline.Processor = (*cachedProcessor)(nil)
