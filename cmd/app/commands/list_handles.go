package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
)

// RunListHandles prints every handle stored under prefix, sorted.
func RunListHandles(
	ctx context.Context,
	storage plugin.HandleStorage,
	logger *slog.Logger,
	prefix string,
	format string,
	streams IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Debug("listing handles", slog.String("prefix", prefix))

	seq, err := storage.GetHandlesForNA(ctx, []byte(prefix))
	if err != nil {
		return fmt.Errorf("failed to list handles: %w", err)
	}

	handles := []string{}
	for h := range seq {
		handles = append(handles, string(h))
	}
	slices.Sort(handles)

	resp := dto.ListHandlesResponse{Prefix: prefix, Total: len(handles), Handles: handles}
	return writeOutput(streams.Writer, format, resp, func(w io.Writer) {
		for _, h := range handles {
			_, _ = fmt.Fprintln(w, h)
		}
		_, _ = fmt.Fprintf(w, "Total: %d\n", len(handles))
	})
}
