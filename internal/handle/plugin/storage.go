// Package plugin adapts the handle use case to the storage contract a handle
// server calls: raw value lookup, naming authority checks and enumeration.
// The storage is read-only; every mutating operation is accepted, logged and
// ignored.
package plugin

import (
	"context"
	"iter"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/kernel"
)

// ScanCallback receives one handle or naming authority per call.
type ScanCallback func(handle []byte) error

// HandleStorage is the storage contract of a handle server.
//
// Lookups report "not found" as a nil result with a nil error. Every other
// failure is a *domain.ProtocolError.
type HandleStorage interface {
	Init(ctx context.Context, settings map[string]string) error
	GetRawHandleValues(ctx context.Context, handle []byte, indexList []int32, typeList [][]byte) ([][]byte, error)
	HaveNA(ctx context.Context, na []byte) (bool, error)
	GetHandlesForNA(ctx context.Context, na []byte) (iter.Seq[[]byte], error)
	Shutdown(ctx context.Context) error

	SetHaveNA(ctx context.Context, na []byte, flag bool) error
	CreateHandle(ctx context.Context, handle []byte, values []domain.HandleValue) error
	DeleteHandle(ctx context.Context, handle []byte) (bool, error)
	UpdateValue(ctx context.Context, handle []byte, values []domain.HandleValue) error
	DeleteAllRecords(ctx context.Context) error
	CheckpointDatabase(ctx context.Context) error
	ScanHandles(ctx context.Context, callback ScanCallback) error
	ScanNAs(ctx context.Context, callback ScanCallback) error

	// HandleMetadata returns the metadata of the object behind handle, nil
	// when the handle does not exist.
	HandleMetadata(ctx context.Context, handle []byte) (domain.Metadata, error)
	RepositoryInfo(ctx context.Context) (domain.RepositoryInfo, error)
	// Ping reports whether the kernel is running and its store reachable.
	Ping(ctx context.Context) error
}

// KernelManager starts and stops the kernel backing the storage.
type KernelManager interface {
	EnsureStarted(ctx context.Context) (kernel.Kernel, error)
	Shutdown(ctx context.Context) error
	IsRunning() bool
}
