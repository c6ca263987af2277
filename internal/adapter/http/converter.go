// Package http provides the HTTP handler layer for the offer pipeline API.
package http

import (
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// ToPipelineRequest converts a ProcessOffersRequest to a pipeline.Request.
// Validation has already normalized the DTO, so the conversion is mechanical.
func ToPipelineRequest(req *ProcessOffersRequest) pipeline.Request {
	return pipeline.Request{
		Offers:   req.Offers,
		Filters:  ToDomainFilters(req.Filters),
		SortBy:   domain.ParseSortOption(req.SortBy),
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

// ToDomainFilters converts a FilterDTO to domain.Filters.
// Returns nil for a nil DTO, which the pipeline treats as no filtering.
func ToDomainFilters(dto *FilterDTO) *domain.Filters {
	if dto == nil {
		return nil
	}

	filters := &domain.Filters{
		Stops:    dto.Stops,
		Airlines: dto.Airlines,
	}
	if dto.PriceRange != nil {
		filters.PriceRange = domain.PriceRangeFilter{
			Min: dto.PriceRange.Min,
			Max: dto.PriceRange.Max,
		}
	}
	return filters
}
