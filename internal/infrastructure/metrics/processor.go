package metrics

import (
	"context"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// instrumentedProcessor decorates a pipeline.Processor with Prometheus
// counters and histograms.
type instrumentedProcessor struct {
	next pipeline.Processor
	m    *Metrics
}

// Instrument wraps a Processor so every run is counted and timed.
func Instrument(next pipeline.Processor, m *Metrics) pipeline.Processor {
	return &instrumentedProcessor{next: next, m: m}
}

// Process implements pipeline.Processor.
func (p *instrumentedProcessor) Process(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, error) {
	p.m.IncProcess()

	result, err := p.next.Process(ctx, req)
	if err != nil {
		return nil, err
	}

	p.m.AddOffers(result.Page.TotalItems, result.Rejected)
	p.m.ObservePipelineDuration(string(domain.ParseSortOption(string(req.SortBy))), float64(result.ProcessingTimeMs))
	return result, nil
}

var _ pipeline.Processor = (*instrumentedProcessor)(nil)
