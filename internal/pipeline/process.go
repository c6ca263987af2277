package pipeline

import (
	"context"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/timeutil"
)

// Default pagination bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Request carries one pipeline invocation: the raw offer set plus the
// caller's current filter, sort and page selections. The caller owns this
// state; the pipeline holds none of its own, so any change of filters or
// sort must come back as a fresh Request — with Page reset to 1, since the
// previous page number is meaningless against a different result set.
type Request struct {
	// Offers is the raw offer set from the search API
	Offers []domain.Offer

	// Filters is the user's filter selection; nil means no filtering
	Filters *domain.Filters

	// SortBy is the sort policy; empty or invalid defaults to best
	SortBy domain.SortOption

	// Page is the 1-based page to return; 0 defaults to 1
	Page int

	// PageSize is the page size; 0 defaults to DefaultPageSize
	PageSize int
}

// Processor runs the full offer-processing pipeline.
type Processor interface {
	// Process sanitizes, filters, sorts and paginates the request's offers
	// and computes the metadata and price report. It never mutates the
	// request's offer slice.
	Process(ctx context.Context, req Request) (*domain.ProcessResult, error)
}

// Config contains configuration options for the processor.
type Config struct {
	// DefaultPageSize is used when a request leaves PageSize unset
	DefaultPageSize int

	// MaxPageSize caps the page size a request may ask for
	MaxPageSize int

	// StrictValidation fails the whole request when any offer carries a
	// malformed price, instead of dropping the offer and reporting a count
	StrictValidation bool
}

// DefaultConfig returns the default processor configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize:  DefaultPageSize,
		MaxPageSize:      MaxPageSize,
		StrictValidation: false,
	}
}

// processor implements Processor over the pure pipeline stages.
type processor struct {
	cfg   Config
	clock timeutil.Clock
}

// New creates a Processor with the given configuration.
// A nil config uses defaults.
func New(config *Config) Processor {
	cfg := DefaultConfig()
	if config != nil {
		if config.DefaultPageSize > 0 {
			cfg.DefaultPageSize = config.DefaultPageSize
		}
		if config.MaxPageSize > 0 {
			cfg.MaxPageSize = config.MaxPageSize
		}
		cfg.StrictValidation = config.StrictValidation
	}

	return &processor{
		cfg:   cfg,
		clock: timeutil.NewRealClock(),
	}
}

// NewWithClock creates a Processor with a custom clock, for tests that
// assert on the reported processing time.
func NewWithClock(config *Config, clock timeutil.Clock) Processor {
	p := New(config).(*processor)
	p.clock = clock
	return p
}

// Process implements Processor.
func (p *processor) Process(ctx context.Context, req Request) (*domain.ProcessResult, error) {
	start := p.clock.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, pageSize, err := p.normalizePaging(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	if p.cfg.StrictValidation {
		if err := ValidateOffers(req.Offers); err != nil {
			return nil, err
		}
	}
	clean, rejected := SanitizeOffers(req.Offers)

	// Metadata comes from the unfiltered set so filter controls keep their
	// full ranges while a filter is active.
	metadata := CalculateMetadata(clean)

	filtered := FilterOffers(clean, req.Filters)
	sorted := SortOffers(filtered, req.SortBy)
	report := ComputePriceStats(sorted)
	pageItems := Paginate(sorted, pageSize, page)

	return &domain.ProcessResult{
		Offers:   pageItems,
		Metadata: metadata,
		Report:   report,
		Page: domain.PageInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(len(sorted), pageSize),
			TotalItems: len(sorted),
		},
		ActiveFilters:    req.Filters.ActiveCount(),
		Rejected:         len(rejected),
		ProcessingTimeMs: p.clock.Now().Sub(start).Milliseconds(),
	}, nil
}

// normalizePaging applies defaults and bounds to the requested page and
// page size.
func (p *processor) normalizePaging(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, domain.WrapInvalidRequest("page must be at least 1, got %d", page)
	}

	if pageSize == 0 {
		pageSize = p.cfg.DefaultPageSize
	}
	if pageSize < 1 {
		return 0, 0, domain.WrapInvalidRequest("pageSize must be at least 1, got %d", pageSize)
	}
	if pageSize > p.cfg.MaxPageSize {
		return 0, 0, domain.WrapInvalidRequest("pageSize cannot exceed %d, got %d", p.cfg.MaxPageSize, pageSize)
	}

	return page, pageSize, nil
}

// Ensure processor implements Processor at compile time.
var _ Processor = (*processor)(nil)
