package usecase

import (
	"context"
	"strings"

	"go.uber.org/atomic"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	"github.com/clarin-dspace/handle-resolver/internal/database"
	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// DefaultPrefix is used when handle.prefix is not configured.
const DefaultPrefix = "123456789"

// handleUseCase implements HandleUseCase.
type handleUseCase struct {
	txManager    database.TxManager
	handleRepo   HandleRepository
	metadataRepo MetadataRepository
	props        ConfigurationProvider

	info atomic.Pointer[domain.RepositoryInfo]
}

// ResolveToURL returns the explicit URL stored for handle or, for handles
// bound to repository objects, the UI URL of the object.
func (h *handleUseCase) ResolveToURL(ctx context.Context, handle string) (string, error) {
	if handle == "" {
		return "", domain.ErrEmptyHandle
	}

	var url string
	err := h.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		row, err := h.getHandle(ctx, handle)
		if err != nil {
			return err
		}

		url, err = h.targetURL(row)
		return err
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

func (h *handleUseCase) targetURL(row *domain.Handle) (string, error) {
	if row.URL != nil {
		return *row.URL, nil
	}

	uiURL, ok := h.props.GetString(config.KeyUIURL)
	if !ok || uiURL == "" {
		return "", domain.ErrUIURLNotConfigured
	}
	return strings.TrimRight(uiURL, "/") + "/handle/" + row.Handle, nil
}

// IsAuthoritative compares na against "0.NA/" + handle.prefix. With
// handle.plugin.multipleprefixes enabled, additional configured prefixes and
// prefixes present in the store are accepted as well.
func (h *handleUseCase) IsAuthoritative(ctx context.Context, na string) (bool, error) {
	if !h.props.GetBool(config.KeyCheckNameAuthority, true) {
		return true, nil
	}

	if na == domain.NAPrefix+h.configuredPrefix() {
		return true, nil
	}

	if !h.props.GetBool(config.KeyMultiplePrefixes, false) {
		return false, nil
	}

	prefix, ok := strings.CutPrefix(na, domain.NAPrefix)
	if !ok || prefix == "" {
		return false, nil
	}

	for _, p := range h.props.GetStrings(config.KeyAdditionalPrefixes) {
		if p == prefix {
			return true, nil
		}
	}

	var stored bool
	err := h.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		stored, err = h.handleRepo.HasPrefix(ctx, prefix)
		return err
	})
	if err != nil {
		return false, err
	}
	return stored, nil
}

func (h *handleUseCase) configuredPrefix() string {
	prefix, ok := h.props.GetString(config.KeyHandlePrefix)
	if !ok || prefix == "" {
		return DefaultPrefix
	}
	return prefix
}

// ListHandles returns the handles under na. An unknown prefix yields an empty slice.
func (h *handleUseCase) ListHandles(ctx context.Context, na string) ([]string, error) {
	prefix := domain.TrimNA(na)
	if prefix == "" {
		return nil, domain.ErrEmptyHandle
	}

	var handles []string
	err := h.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		handles, err = h.handleRepo.ListByPrefix(ctx, prefix)
		return err
	})
	if err != nil {
		return nil, err
	}
	if handles == nil {
		handles = []string{}
	}
	return handles, nil
}

// LookupObject returns the object bound to handle.
func (h *handleUseCase) LookupObject(ctx context.Context, handle string) (*domain.Object, error) {
	if handle == "" {
		return nil, domain.ErrEmptyHandle
	}

	var obj *domain.Object
	err := h.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		row, err := h.getHandle(ctx, handle)
		if err != nil {
			return err
		}
		obj = row.Object()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// ExtractMetadata returns TITLE, REPOSITORY, SUBMITDATE and REPORTEMAIL in
// that order. Title and submit date are omitted when the item lacks them.
// Objects other than items yield empty metadata.
func (h *handleUseCase) ExtractMetadata(ctx context.Context, obj *domain.Object) (domain.Metadata, error) {
	md := domain.Metadata{}
	if !obj.IsItem() {
		return md, nil
	}

	var title, submitDate string
	err := h.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		if title, err = h.firstValue(ctx, obj, domain.DCTitle); err != nil {
			return err
		}
		submitDate, err = h.firstValue(ctx, obj, domain.DCDateAccessioned)
		return err
	})
	if err != nil {
		return nil, err
	}

	info := h.RepositoryInfo()
	if title != "" {
		md = append(md, domain.Field{Name: domain.FieldTitle, Value: title})
	}
	md = append(md, domain.Field{Name: domain.FieldRepository, Value: info.Name})
	if submitDate != "" {
		md = append(md, domain.Field{Name: domain.FieldSubmitDate, Value: submitDate})
	}
	md = append(md, domain.Field{Name: domain.FieldReportEmail, Value: info.Email})
	return md, nil
}

func (h *handleUseCase) firstValue(ctx context.Context, obj *domain.Object, field string) (string, error) {
	values, err := h.metadataRepo.GetValues(ctx, obj.ID, field)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to read %s", field)
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// RepositoryInfo returns the repository configuration, read once and then
// served from the published copy.
func (h *handleUseCase) RepositoryInfo() domain.RepositoryInfo {
	if info := h.info.Load(); info != nil {
		return *info
	}

	info := &domain.RepositoryInfo{
		Name:            h.trimmed(config.KeyRepositoryName),
		Email:           h.trimmed(config.KeyRepositoryEmail),
		CanonicalPrefix: h.trimmed(config.KeyCanonicalPrefix),
	}
	if info.CanonicalPrefix == "" {
		info.CanonicalPrefix = domain.DefaultCanonicalPrefix
	}

	// Losers of the race return the winner's copy.
	h.info.CompareAndSwap(nil, info)
	return *h.info.Load()
}

func (h *handleUseCase) trimmed(key string) string {
	v, _ := h.props.GetString(key)
	return strings.TrimSpace(v)
}

func (h *handleUseCase) getHandle(ctx context.Context, handle string) (*domain.Handle, error) {
	row, err := h.handleRepo.GetByHandle(ctx, handle)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrHandleNotFound
		}
		return nil, err
	}
	return row, nil
}

// NewHandleUseCase creates a new HandleUseCase.
func NewHandleUseCase(
	txManager database.TxManager,
	handleRepo HandleRepository,
	metadataRepo MetadataRepository,
	props ConfigurationProvider,
) HandleUseCase {
	return &handleUseCase{
		txManager:    txManager,
		handleRepo:   handleRepo,
		metadataRepo: metadataRepo,
		props:        props,
	}
}
