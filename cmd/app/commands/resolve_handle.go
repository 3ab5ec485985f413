package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/clarin-dspace/handle-resolver/internal/handle/codec"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
)

// RunResolveHandle looks up handle through storage and prints its values.
// A missing handle is reported with domain.ErrHandleNotFound.
func RunResolveHandle(
	ctx context.Context,
	storage plugin.HandleStorage,
	logger *slog.Logger,
	handle string,
	format string,
	streams IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if handle == "" {
		return domain.ErrEmptyHandle
	}

	logger.Debug("resolving handle", slog.String("handle", handle))

	raw, err := storage.GetRawHandleValues(ctx, []byte(handle), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to resolve handle: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("%w: %s", domain.ErrHandleNotFound, handle)
	}

	values := make([]domain.HandleValue, 0, len(raw))
	for _, b := range raw {
		v, err := codec.Decode(b)
		if err != nil {
			return fmt.Errorf("failed to decode handle value: %w", err)
		}
		values = append(values, v)
	}

	resp := dto.MapLookupResponse(handle, values)
	return writeOutput(streams.Writer, format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Handle: %s\n", handle)
		for _, v := range resp.Values {
			_, _ = fmt.Fprintf(w, "  [%d] %s %s (ttl %d)\n", v.Index, v.Type, v.Data.Value, v.TTL)
		}
	})
}
