package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
)

// RunCheckAuthority reports whether storage is authoritative for na. A bare
// prefix is accepted and turned into "0.NA/<prefix>".
func RunCheckAuthority(
	ctx context.Context,
	storage plugin.HandleStorage,
	logger *slog.Logger,
	na string,
	format string,
	streams IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if na == "" {
		return domain.ErrEmptyHandle
	}
	if !strings.HasPrefix(na, domain.NAPrefix) {
		na = domain.NAPrefix + na
	}

	logger.Debug("checking naming authority", slog.String("na", na))

	ok, err := storage.HaveNA(ctx, []byte(na))
	if err != nil {
		return fmt.Errorf("failed to check naming authority: %w", err)
	}

	resp := dto.AuthorityResponse{NA: na, Authoritative: ok}
	return writeOutput(streams.Writer, format, resp, func(w io.Writer) {
		if ok {
			_, _ = fmt.Fprintf(w, "%s: authoritative\n", na)
			return
		}
		_, _ = fmt.Fprintf(w, "%s: not authoritative\n", na)
	})
}
