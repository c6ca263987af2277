// Package integration provides helpers and integration tests for the offer
// pipeline service. Integration tests verify that components work together
// correctly, including HTTP handlers, the processing pipeline, and the
// cache and metrics decorators.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	httpAdapter "github.com/flight-offers/offer-pipeline-service/internal/adapter/http"
	"github.com/flight-offers/offer-pipeline-service/internal/cache"
	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/metrics"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
	"github.com/flight-offers/offer-pipeline-service/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a new test server backed by the given processor.
func NewTestServer(proc pipeline.Processor) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewOfferHandler(proc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     []byte
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// RawBody wins over Body when both are set.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != nil:
		bodyReader = bytes.NewReader(req.RawBody)
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil || req.RawBody != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ProcessRequest posts a process request with the given body.
func (ts *TestServer) ProcessRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/process",
		Body:   body,
	})
}

// ImportRequest posts a raw search payload to the import endpoint.
// The path may carry query parameters for sort, paging and filters.
func (ts *TestServer) ImportRequest(path string, payload []byte) Response {
	return ts.Do(Request{
		Method:  http.MethodPost,
		Path:    path,
		RawBody: payload,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseResult parses the response body as a ProcessResponseDTO.
func (r *Response) ParseResult() (*httpAdapter.ProcessResponseDTO, error) {
	var resp httpAdapter.ProcessResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ProcessRequestBody is a helper struct for building process request bodies.
type ProcessRequestBody struct {
	Offers       []domain.Offer         `json:"offers"`
	Dictionaries *domain.Dictionaries   `json:"dictionaries,omitempty"`
	Filters      map[string]interface{} `json:"filters,omitempty"`
	SortBy       string                 `json:"sortBy,omitempty"`
	Page         int                    `json:"page,omitempty"`
	PageSize     int                    `json:"pageSize,omitempty"`
}

// DefaultProcessRequest returns a valid process request body for testing.
func DefaultProcessRequest() ProcessRequestBody {
	return ProcessRequestBody{
		Offers:       mock.SampleOffers(5),
		Dictionaries: mock.SampleDictionaries(),
	}
}

// CreateProcessor creates a bare processor with default configuration.
func CreateProcessor() pipeline.Processor {
	return pipeline.New(nil)
}

// CreateProcessorWithConfig creates a bare processor with custom configuration.
func CreateProcessorWithConfig(config *pipeline.Config) pipeline.Processor {
	return pipeline.New(config)
}

// CreateDecoratedProcessor assembles the production decorator chain
// (core pipeline, cache, metrics) over a no-op cache and a fresh registry,
// and returns the metrics so tests can assert on recorded values.
func CreateDecoratedProcessor() (pipeline.Processor, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	proc := pipeline.New(nil)
	proc = cache.Wrap(proc, cache.NewNoOpCache(), m, nil)
	proc = metrics.Instrument(proc, m)
	return proc, m
}
