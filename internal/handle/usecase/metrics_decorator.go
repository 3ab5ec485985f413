package usecase

import (
	"context"
	"time"

	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/metrics"
)

const metricsComponent = "handles"

// handleUseCaseWithMetrics decorates HandleUseCase with metrics instrumentation.
type handleUseCaseWithMetrics struct {
	next    HandleUseCase
	metrics metrics.BusinessMetrics
}

// NewHandleUseCaseWithMetrics wraps a HandleUseCase with metrics recording.
func NewHandleUseCaseWithMetrics(useCase HandleUseCase, m metrics.BusinessMetrics) HandleUseCase {
	return &handleUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (h *handleUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}

	h.metrics.RecordOperation(ctx, metricsComponent, operation, status)
	h.metrics.RecordDuration(ctx, metricsComponent, operation, time.Since(start), status)
}

// ResolveToURL records metrics for handle resolution.
func (h *handleUseCaseWithMetrics) ResolveToURL(ctx context.Context, handle string) (string, error) {
	start := time.Now()
	url, err := h.next.ResolveToURL(ctx, handle)
	h.record(ctx, "handle_resolve", start, err)
	return url, err
}

// IsAuthoritative records metrics for naming authority checks.
func (h *handleUseCaseWithMetrics) IsAuthoritative(ctx context.Context, na string) (bool, error) {
	start := time.Now()
	ok, err := h.next.IsAuthoritative(ctx, na)
	h.record(ctx, "authority_check", start, err)
	return ok, err
}

// ListHandles records metrics for enumeration.
func (h *handleUseCaseWithMetrics) ListHandles(ctx context.Context, na string) ([]string, error) {
	start := time.Now()
	handles, err := h.next.ListHandles(ctx, na)
	h.record(ctx, "handle_list", start, err)
	return handles, err
}

// LookupObject records metrics for object lookups.
func (h *handleUseCaseWithMetrics) LookupObject(ctx context.Context, handle string) (*domain.Object, error) {
	start := time.Now()
	obj, err := h.next.LookupObject(ctx, handle)
	h.record(ctx, "object_lookup", start, err)
	return obj, err
}

// ExtractMetadata records metrics for metadata extraction.
func (h *handleUseCaseWithMetrics) ExtractMetadata(
	ctx context.Context,
	obj *domain.Object,
) (domain.Metadata, error) {
	start := time.Now()
	md, err := h.next.ExtractMetadata(ctx, obj)
	h.record(ctx, "metadata_extract", start, err)
	return md, err
}

// RepositoryInfo is not instrumented; it is served from memory.
func (h *handleUseCaseWithMetrics) RepositoryInfo() domain.RepositoryInfo {
	return h.next.RepositoryInfo()
}
