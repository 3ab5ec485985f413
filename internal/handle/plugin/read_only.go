package plugin

import (
	"context"
	"log/slog"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// readOnlyStorage implements the mutating half of HandleStorage for a
// resolve-only deployment. Each operation logs that it was called and
// returns the benign result. None of them touch the kernel.
type readOnlyStorage struct {
	logger *slog.Logger
}

func (r readOnlyStorage) notImplemented(ctx context.Context, op string) {
	r.logger.InfoContext(ctx, "called "+op+" (not implemented)")
}

// SetHaveNA is a no-op.
func (r readOnlyStorage) SetHaveNA(ctx context.Context, _ []byte, _ bool) error {
	r.notImplemented(ctx, "setHaveNA")
	return nil
}

// CreateHandle is a no-op.
func (r readOnlyStorage) CreateHandle(ctx context.Context, _ []byte, _ []domain.HandleValue) error {
	r.notImplemented(ctx, "createHandle")
	return nil
}

// DeleteHandle is a no-op and reports that nothing was deleted.
func (r readOnlyStorage) DeleteHandle(ctx context.Context, _ []byte) (bool, error) {
	r.notImplemented(ctx, "deleteHandle")
	return false, nil
}

// UpdateValue is a no-op.
func (r readOnlyStorage) UpdateValue(ctx context.Context, _ []byte, _ []domain.HandleValue) error {
	r.notImplemented(ctx, "updateValue")
	return nil
}

// DeleteAllRecords is a no-op.
func (r readOnlyStorage) DeleteAllRecords(ctx context.Context) error {
	r.notImplemented(ctx, "deleteAllRecords")
	return nil
}

// CheckpointDatabase is a no-op.
func (r readOnlyStorage) CheckpointDatabase(ctx context.Context) error {
	r.notImplemented(ctx, "checkpointDatabase")
	return nil
}

// ScanHandles is a no-op; callback is never invoked.
func (r readOnlyStorage) ScanHandles(ctx context.Context, _ ScanCallback) error {
	r.notImplemented(ctx, "scanHandles")
	return nil
}

// ScanNAs is a no-op; callback is never invoked.
func (r readOnlyStorage) ScanNAs(ctx context.Context, _ ScanCallback) error {
	r.notImplemented(ctx, "scanNAs")
	return nil
}
