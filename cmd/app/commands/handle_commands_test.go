package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clarin-dspace/handle-resolver/internal/handle/codec"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin/mocks"
)

func newTestIO() (IOTuple, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return IOTuple{Reader: strings.NewReader(""), Writer: out}, out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunResolveHandle(t *testing.T) {
	ctx := context.Background()
	raw := codec.EncodeAll([]domain.HandleValue{domain.NewURLValue("http://repo.example.org/items/1")})

	t.Run("text", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			GetRawHandleValues(ctx, []byte("11234/1"), mock.Anything, mock.Anything).
			Return(raw, nil).
			Once()

		streams, out := newTestIO()
		err := RunResolveHandle(ctx, storage, discardLogger(), "11234/1", FormatText, streams)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Handle: 11234/1")
		assert.Contains(t, out.String(), "[100] URL http://repo.example.org/items/1 (ttl 100)")
	})

	t.Run("json", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			GetRawHandleValues(ctx, []byte("11234/1"), mock.Anything, mock.Anything).
			Return(raw, nil).
			Once()

		streams, out := newTestIO()
		err := RunResolveHandle(ctx, storage, discardLogger(), "11234/1", FormatJSON, streams)
		require.NoError(t, err)

		var resp dto.LookupResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Equal(t, dto.ResponseCodeSuccess, resp.ResponseCode)
		require.Len(t, resp.Values, 1)
		assert.Equal(t, "URL", resp.Values[0].Type)
		assert.Equal(t, "http://repo.example.org/items/1", resp.Values[0].Data.Value)
	})

	t.Run("not found", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			GetRawHandleValues(ctx, []byte("11234/404"), mock.Anything, mock.Anything).
			Return(nil, nil).
			Once()

		streams, out := newTestIO()
		err := RunResolveHandle(ctx, storage, discardLogger(), "11234/404", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrHandleNotFound)
		assert.Empty(t, out.String())
	})

	t.Run("storage error", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		protoErr := domain.NewProtocolError("getRawHandleValues", "11234/1", errors.New("db down"))
		storage.EXPECT().
			GetRawHandleValues(ctx, []byte("11234/1"), mock.Anything, mock.Anything).
			Return(nil, protoErr).
			Once()

		streams, _ := newTestIO()
		err := RunResolveHandle(ctx, storage, discardLogger(), "11234/1", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrProtocol)
	})

	t.Run("empty handle", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		streams, _ := newTestIO()

		err := RunResolveHandle(ctx, storage, discardLogger(), "", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrEmptyHandle)
	})

	t.Run("invalid format", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		streams, _ := newTestIO()

		err := RunResolveHandle(ctx, storage, discardLogger(), "11234/1", "xml", streams)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format: xml")
	})
}

func TestRunListHandles(t *testing.T) {
	ctx := context.Background()
	seq := slices.Values([][]byte{[]byte("11234/2"), []byte("11234/10"), []byte("11234/1")})

	t.Run("text sorted", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().GetHandlesForNA(ctx, []byte("11234")).Return(seq, nil).Once()

		streams, out := newTestIO()
		err := RunListHandles(ctx, storage, discardLogger(), "11234", FormatText, streams)

		require.NoError(t, err)
		assert.Equal(t, "11234/1\n11234/10\n11234/2\nTotal: 3\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().GetHandlesForNA(ctx, []byte("11234")).Return(seq, nil).Once()

		streams, out := newTestIO()
		err := RunListHandles(ctx, storage, discardLogger(), "11234", FormatJSON, streams)
		require.NoError(t, err)

		var resp dto.ListHandlesResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Equal(t, "11234", resp.Prefix)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, []string{"11234/1", "11234/10", "11234/2"}, resp.Handles)
	})

	t.Run("empty prefix yields empty list", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			GetHandlesForNA(ctx, []byte("99999")).
			Return(slices.Values([][]byte{}), nil).
			Once()

		streams, out := newTestIO()
		err := RunListHandles(ctx, storage, discardLogger(), "99999", FormatJSON, streams)
		require.NoError(t, err)
		assert.Contains(t, out.String(), `"handles": []`)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			GetHandlesForNA(ctx, []byte("11234")).
			Return(nil, domain.NewProtocolError("getHandlesForNA", "11234", errors.New("boom"))).
			Once()

		streams, _ := newTestIO()
		err := RunListHandles(ctx, storage, discardLogger(), "11234", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrProtocol)
		assert.Contains(t, err.Error(), "failed to list handles")
	})
}

func TestRunCheckAuthority(t *testing.T) {
	ctx := context.Background()

	t.Run("bare prefix gets NA prefix", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HaveNA(ctx, []byte("0.NA/11234")).Return(true, nil).Once()

		streams, out := newTestIO()
		err := RunCheckAuthority(ctx, storage, discardLogger(), "11234", FormatText, streams)

		require.NoError(t, err)
		assert.Equal(t, "0.NA/11234: authoritative\n", out.String())
	})

	t.Run("not authoritative json", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HaveNA(ctx, []byte("0.NA/99999")).Return(false, nil).Once()

		streams, out := newTestIO()
		err := RunCheckAuthority(ctx, storage, discardLogger(), "0.NA/99999", FormatJSON, streams)
		require.NoError(t, err)

		var resp dto.AuthorityResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Equal(t, "0.NA/99999", resp.NA)
		assert.False(t, resp.Authoritative)
	})

	t.Run("empty", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		streams, _ := newTestIO()

		err := RunCheckAuthority(ctx, storage, discardLogger(), "", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrEmptyHandle)
	})

	t.Run("storage error", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().
			HaveNA(ctx, []byte("0.NA/11234")).
			Return(false, domain.NewProtocolError("haveNA", "0.NA/11234", errors.New("boom"))).
			Once()

		streams, _ := newTestIO()
		err := RunCheckAuthority(ctx, storage, discardLogger(), "11234", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrProtocol)
	})
}

func TestRunHandleMetadata(t *testing.T) {
	ctx := context.Background()
	md := domain.Metadata{
		{Name: domain.FieldTitle, Value: "Corpus"},
		{Name: domain.FieldRepository, Value: "LINDAT"},
	}
	info := domain.RepositoryInfo{Name: "LINDAT", CanonicalPrefix: "http://hdl.handle.net/"}

	t.Run("text", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HandleMetadata(ctx, []byte("11234/1")).Return(md, nil).Once()
		storage.EXPECT().RepositoryInfo(ctx).Return(info, nil).Once()

		streams, out := newTestIO()
		err := RunHandleMetadata(ctx, storage, discardLogger(), "11234/1", FormatText, streams)

		require.NoError(t, err)
		assert.Equal(t,
			"Handle: 11234/1\nURL:    http://hdl.handle.net/11234/1\nTITLE: Corpus\nREPOSITORY: LINDAT\n",
			out.String(),
		)
	})

	t.Run("json keeps field order", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HandleMetadata(ctx, []byte("11234/1")).Return(md, nil).Once()
		storage.EXPECT().RepositoryInfo(ctx).Return(info, nil).Once()

		streams, out := newTestIO()
		err := RunHandleMetadata(ctx, storage, discardLogger(), "11234/1", FormatJSON, streams)
		require.NoError(t, err)

		var resp dto.MetadataResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		require.Len(t, resp.Fields, 2)
		assert.Equal(t, "TITLE", resp.Fields[0].Name)
		assert.Equal(t, "REPOSITORY", resp.Fields[1].Name)
	})

	t.Run("not found", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HandleMetadata(ctx, []byte("11234/404")).Return(nil, nil).Once()

		streams, _ := newTestIO()
		err := RunHandleMetadata(ctx, storage, discardLogger(), "11234/404", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrHandleNotFound)
	})

	t.Run("repository info error", func(t *testing.T) {
		storage := mocks.NewMockHandleStorage(t)
		storage.EXPECT().HandleMetadata(ctx, []byte("11234/1")).Return(md, nil).Once()
		storage.EXPECT().
			RepositoryInfo(ctx).
			Return(domain.RepositoryInfo{}, domain.NewProtocolError("repositoryInfo", "", errors.New("boom"))).
			Once()

		streams, _ := newTestIO()
		err := RunHandleMetadata(ctx, storage, discardLogger(), "11234/1", FormatText, streams)

		require.ErrorIs(t, err, domain.ErrProtocol)
	})
}
