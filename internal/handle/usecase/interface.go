// Package usecase implements the resolve path of the handle resolver: URL
// resolution, naming authority checks, enumeration and metadata extraction.
// Every store access runs inside a read-only transaction that is released
// before the call returns.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// HandleRepository reads the identifier store.
type HandleRepository interface {
	GetByHandle(ctx context.Context, handle string) (*domain.Handle, error)
	ListByPrefix(ctx context.Context, prefix string) ([]string, error)
	HasPrefix(ctx context.Context, prefix string) (bool, error)
}

// MetadataRepository reads object metadata values.
type MetadataRepository interface {
	GetValues(ctx context.Context, resourceID uuid.UUID, field string) ([]string, error)
}

// ConfigurationProvider exposes repository properties.
type ConfigurationProvider interface {
	GetString(key string) (string, bool)
	GetBool(key string, def bool) bool
	GetInt(key string, def int) int
	GetStrings(key string) []string
}

// HandleUseCase defines the read-only handle operations.
type HandleUseCase interface {
	// ResolveToURL returns the target URL of handle, or domain.ErrHandleNotFound.
	ResolveToURL(ctx context.Context, handle string) (string, error)
	// IsAuthoritative reports whether this node serves the naming authority
	// handle na ("0.NA/<prefix>").
	IsAuthoritative(ctx context.Context, na string) (bool, error)
	// ListHandles returns every handle under the naming authority na. The
	// "0.NA/" part is optional.
	ListHandles(ctx context.Context, na string) ([]string, error)
	// LookupObject returns the repository object bound to handle, or nil when
	// the handle has no binding.
	LookupObject(ctx context.Context, handle string) (*domain.Object, error)
	ExtractMetadata(ctx context.Context, obj *domain.Object) (domain.Metadata, error)
	RepositoryInfo() domain.RepositoryInfo
}
