package plugin

import (
	"context"
	"iter"
	"log/slog"

	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/codec"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// Plugin implements HandleStorage on top of the kernel's handle use case.
type Plugin struct {
	readOnlyStorage

	manager KernelManager
	logger  *slog.Logger
}

var _ HandleStorage = (*Plugin)(nil)

// New creates a Plugin. The kernel is started by Init or by the first lookup.
func New(manager KernelManager, logger *slog.Logger) *Plugin {
	return &Plugin{
		readOnlyStorage: readOnlyStorage{logger: logger},
		manager:         manager,
		logger:          logger,
	}
}

// Init starts the kernel. A startup failure is returned as *kernel.StartupError.
func (p *Plugin) Init(ctx context.Context, settings map[string]string) error {
	p.logger.Info("initializing handle storage", slog.Int("settings", len(settings)))

	if _, err := p.manager.EnsureStarted(ctx); err != nil {
		p.logger.Error("handle storage init failed", slog.Any("error", err))
		return err
	}
	return nil
}

// GetRawHandleValues resolves handle and returns the encoded URL record.
// The index and type filters are accepted and ignored.
func (p *Plugin) GetRawHandleValues(
	ctx context.Context,
	handle []byte,
	_ []int32,
	_ [][]byte,
) ([][]byte, error) {
	const op = "getRawHandleValues"

	if len(handle) == 0 {
		return nil, p.protocolError(op, "", domain.ErrEmptyHandle)
	}
	h := string(handle)

	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return nil, p.protocolError(op, h, err)
	}

	url, err := k.Handles().ResolveToURL(ctx, h)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			p.logger.Debug("handle not found", slog.String("handle", h))
			return nil, nil
		}
		return nil, p.protocolError(op, h, err)
	}

	return codec.EncodeAll([]domain.HandleValue{domain.NewURLValue(url)}), nil
}

// HaveNA reports whether this storage is authoritative for the naming
// authority handle na.
func (p *Plugin) HaveNA(ctx context.Context, na []byte) (bool, error) {
	const op = "haveNA"
	n := string(na)

	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return false, p.protocolError(op, n, err)
	}

	ok, err := k.Handles().IsAuthoritative(ctx, n)
	if err != nil {
		return false, p.protocolError(op, n, err)
	}
	return ok, nil
}

// GetHandlesForNA returns every handle under the naming authority na. The
// handles are read inside one session that is closed before returning; the
// sequence can be ranged over any number of times.
func (p *Plugin) GetHandlesForNA(ctx context.Context, na []byte) (iter.Seq[[]byte], error) {
	const op = "getHandlesForNA"

	if len(na) == 0 {
		return nil, p.protocolError(op, "", domain.ErrEmptyHandle)
	}
	n := string(na)

	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return nil, p.protocolError(op, n, err)
	}

	handles, err := k.Handles().ListHandles(ctx, n)
	if err != nil {
		return nil, p.protocolError(op, n, err)
	}

	return func(yield func([]byte) bool) {
		for _, h := range handles {
			if !yield([]byte(h)) {
				return
			}
		}
	}, nil
}

// Shutdown destroys the kernel. It is safe to call more than once.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if err := p.manager.Shutdown(ctx); err != nil {
		return p.protocolError("shutdown", "", err)
	}
	return nil
}

// HandleMetadata returns the metadata rendered for handle.
func (p *Plugin) HandleMetadata(ctx context.Context, handle []byte) (domain.Metadata, error) {
	const op = "handleMetadata"

	if len(handle) == 0 {
		return nil, p.protocolError(op, "", domain.ErrEmptyHandle)
	}
	h := string(handle)

	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return nil, p.protocolError(op, h, err)
	}

	obj, err := k.Handles().LookupObject(ctx, h)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, p.protocolError(op, h, err)
	}

	md, err := k.Handles().ExtractMetadata(ctx, obj)
	if err != nil {
		return nil, p.protocolError(op, h, err)
	}
	if md == nil {
		md = domain.Metadata{}
	}
	return md, nil
}

// RepositoryInfo returns the repository configuration of the running kernel.
func (p *Plugin) RepositoryInfo(ctx context.Context) (domain.RepositoryInfo, error) {
	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return domain.RepositoryInfo{}, p.protocolError("repositoryInfo", "", err)
	}
	return k.Handles().RepositoryInfo(), nil
}

// Ping does not start the kernel.
func (p *Plugin) Ping(ctx context.Context) error {
	if !p.manager.IsRunning() {
		return apperrors.Wrap(apperrors.ErrUnavailable, "kernel is not running")
	}

	k, err := p.manager.EnsureStarted(ctx)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUnavailable, "kernel: %v", err)
	}
	if err := k.Ping(ctx); err != nil {
		return apperrors.Wrapf(apperrors.ErrUnavailable, "store ping: %v", err)
	}
	return nil
}

// protocolError logs cause with its context and returns the error the
// handle server sees.
func (p *Plugin) protocolError(op, handle string, cause error) *domain.ProtocolError {
	level := slog.LevelError
	if apperrors.Is(cause, apperrors.ErrInvalidInput) {
		level = slog.LevelDebug
	}
	p.logger.Log(context.Background(), level, "handle storage operation failed",
		slog.String("operation", op),
		slog.String("handle", handle),
		slog.Any("error", cause),
	)
	return domain.NewProtocolError(op, handle, cause)
}
