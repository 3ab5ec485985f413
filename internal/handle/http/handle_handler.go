// Package http exposes the handle storage over a small read-only HTTP API:
// value lookups, enumeration, authority checks, metadata and redirects.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clarin-dspace/handle-resolver/internal/handle/codec"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
	"github.com/clarin-dspace/handle-resolver/internal/httputil"
	customValidation "github.com/clarin-dspace/handle-resolver/internal/validation"
)

// HandleHandler serves handle lookups from a HandleStorage.
type HandleHandler struct {
	storage plugin.HandleStorage
	logger  *slog.Logger
}

// NewHandleHandler creates a new handle handler.
func NewHandleHandler(storage plugin.HandleStorage, logger *slog.Logger) *HandleHandler {
	return &HandleHandler{
		storage: storage,
		logger:  logger,
	}
}

// RegisterRoutes mounts the handler on router.
func (h *HandleHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.GET("/handles/*handle", h.LookupHandler)
		api.GET("/prefixes/:prefix/handles", h.ListHandlesHandler)
		api.GET("/authority", h.AuthorityHandler)
		api.GET("/metadata/*handle", h.MetadataHandler)
	}
	router.GET("/resolve/*handle", h.ResolveHandler)
}

// LookupHandler returns the values of a handle.
// GET /api/handles/*handle?index=N&type=T
func (h *HandleHandler) LookupHandler(c *gin.Context) {
	handle := handleParam(c)

	req, err := dto.NewLookupRequest(handle, c.QueryArray("index"), c.QueryArray("type"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	values, ok := h.lookup(c, req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.MapLookupResponse(handle, values))
}

// ResolveHandler redirects to the URL a handle resolves to.
// GET /resolve/*handle
func (h *HandleHandler) ResolveHandler(c *gin.Context) {
	req := dto.LookupRequest{Handle: handleParam(c)}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	values, ok := h.lookup(c, req)
	if !ok {
		return
	}

	for _, v := range values {
		if v.TypeString() == string(domain.URLValueType) {
			c.Redirect(http.StatusFound, v.DataString())
			return
		}
	}
	httputil.HandleErrorGin(c, fmt.Errorf("handle %s has no URL value: %w", req.Handle, domain.ErrHandleNotFound), h.logger)
}

// lookup fetches and decodes the values of req.Handle. On failure it writes
// the response and returns false.
func (h *HandleHandler) lookup(c *gin.Context, req dto.LookupRequest) ([]domain.HandleValue, bool) {
	raw, err := h.storage.GetRawHandleValues(c.Request.Context(), []byte(req.Handle), req.Indexes, req.Types)
	if err != nil {
		h.logger.Error("handle lookup failed", slog.String("handle", req.Handle), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, dto.LookupResponse{
			ResponseCode: dto.ResponseCodeError,
			Handle:       req.Handle,
			Message:      "Error resolving handle",
		})
		return nil, false
	}
	if raw == nil {
		c.JSON(http.StatusNotFound, dto.LookupResponse{
			ResponseCode: dto.ResponseCodeNotFound,
			Handle:       req.Handle,
			Message:      "Handle Not Found",
		})
		return nil, false
	}

	values := make([]domain.HandleValue, 0, len(raw))
	for _, b := range raw {
		v, err := codec.Decode(b)
		if err != nil {
			// Undecodable stored values map to 500.
			httputil.HandleErrorGin(c, fmt.Errorf("decode value of %s: %v", req.Handle, err), h.logger)
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// ListHandlesHandler enumerates the handles under a prefix, sorted.
// GET /api/prefixes/:prefix/handles?offset=N&limit=M
func (h *HandleHandler) ListHandlesHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	req := dto.ListHandlesRequest{Prefix: c.Param("prefix"), Offset: offset, Limit: limit}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	seq, err := h.storage.GetHandlesForNA(c.Request.Context(), []byte(domain.NAPrefix+req.Prefix))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	handles := []string{}
	for b := range seq {
		handles = append(handles, string(b))
	}
	slices.Sort(handles)

	c.JSON(http.StatusOK, dto.ListHandlesResponse{
		Prefix:  req.Prefix,
		Total:   len(handles),
		Handles: httputil.Page(handles, req.Offset, req.Limit),
	})
}

// AuthorityHandler reports whether a naming authority is served here.
// GET /api/authority?na=0.NA/123456789
func (h *HandleHandler) AuthorityHandler(c *gin.Context) {
	var req dto.AuthorityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ok, err := h.storage.HaveNA(c.Request.Context(), []byte(req.NA))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorityResponse{NA: req.NA, Authoritative: ok})
}

// MetadataHandler renders the metadata of the object behind a handle.
// GET /api/metadata/*handle
func (h *HandleHandler) MetadataHandler(c *gin.Context) {
	req := dto.LookupRequest{Handle: handleParam(c)}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	ctx := c.Request.Context()
	md, err := h.storage.HandleMetadata(ctx, []byte(req.Handle))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if md == nil {
		httputil.HandleErrorGin(c, domain.ErrHandleNotFound, h.logger)
		return
	}

	info, err := h.storage.RepositoryInfo(ctx)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMetadataResponse(req.Handle, md, info))
}

func handleParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("handle"), "/")
}
