package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
)

// RunHandleMetadata prints the metadata fields of the object behind handle.
func RunHandleMetadata(
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

	logger.Debug("extracting handle metadata", slog.String("handle", handle))

	md, err := storage.HandleMetadata(ctx, []byte(handle))
	if err != nil {
		return fmt.Errorf("failed to extract metadata: %w", err)
	}
	if md == nil {
		return fmt.Errorf("%w: %s", domain.ErrHandleNotFound, handle)
	}

	info, err := storage.RepositoryInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to read repository info: %w", err)
	}

	resp := dto.MapMetadataResponse(handle, md, info)
	return writeOutput(streams.Writer, format, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Handle: %s\n", resp.Handle)
		_, _ = fmt.Fprintf(w, "URL:    %s\n", resp.CanonicalURL)
		for _, f := range resp.Fields {
			_, _ = fmt.Fprintf(w, "%s: %s\n", f.Name, f.Value)
		}
	})
}
