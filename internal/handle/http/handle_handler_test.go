package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clarin-dspace/handle-resolver/internal/handle/codec"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin/mocks"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockHandleStorage) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	storage := mocks.NewMockHandleStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	NewHandleHandler(storage, logger).RegisterRoutes(router)

	return router, storage
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func encodedURL(url string) [][]byte {
	return codec.EncodeAll([]domain.HandleValue{domain.NewURLValue(url)})
}

func TestHandleHandler_LookupHandler(t *testing.T) {
	t.Run("Success_ReturnsURLValue", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, []byte("123456789/1"), []int32(nil), [][]byte(nil)).
			Return(encodedURL("http://example.org/item/1"), nil).
			Once()

		w := serve(router, "/api/handles/123456789/1")

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LookupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ResponseCodeSuccess, response.ResponseCode)
		assert.Equal(t, "123456789/1", response.Handle)
		require.Len(t, response.Values, 1)
		assert.Equal(t, int32(100), response.Values[0].Index)
		assert.Equal(t, "URL", response.Values[0].Type)
		assert.Equal(t, "http://example.org/item/1", response.Values[0].Data.Value)
	})

	t.Run("Success_FiltersForwarded", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, []byte("123456789/1"), []int32{1, 100}, [][]byte{[]byte("EMAIL")}).
			Return(encodedURL("http://example.org/item/1"), nil).
			Once()

		w := serve(router, "/api/handles/123456789/1?index=1&index=100&type=EMAIL")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound_ResponseCode100", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, []byte("123456789/404"), mock.Anything, mock.Anything).
			Return(nil, nil).
			Once()

		w := serve(router, "/api/handles/123456789/404")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response dto.LookupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ResponseCodeNotFound, response.ResponseCode)
		assert.Empty(t, response.Values)
	})

	t.Run("Error_ProtocolErrorResponseCode2", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewProtocolError("getRawHandleValues", "123456789/1", errors.New("db down"))).
			Once()

		w := serve(router, "/api/handles/123456789/1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response dto.LookupResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ResponseCodeError, response.ResponseCode)
		assert.NotContains(t, w.Body.String(), "db down")
	})

	t.Run("Error_InvalidIndex", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, "/api/handles/123456789/1?index=abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MalformedHandle", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, "/api/handles/123456789")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_UndecodableValue", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([][]byte{{0x00, 0x01}}, nil).
			Once()

		w := serve(router, "/api/handles/123456789/1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleHandler_ResolveHandler(t *testing.T) {
	t.Run("Success_Redirects", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, []byte("123456789/1"), []int32(nil), [][]byte(nil)).
			Return(encodedURL("http://example.org/item/1"), nil).
			Once()

		w := serve(router, "/resolve/123456789/1")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://example.org/item/1", w.Header().Get("Location"))
	})

	t.Run("NotFound", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetRawHandleValues(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).
			Once()

		w := serve(router, "/resolve/123456789/404")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleHandler_ListHandlesHandler(t *testing.T) {
	t.Run("Success_SortedAndPaged", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		handles := [][]byte{[]byte("123456789/3"), []byte("123456789/1"), []byte("123456789/2")}
		storage.EXPECT().
			GetHandlesForNA(mock.Anything, []byte("0.NA/123456789")).
			Return(slices.Values(handles), nil).
			Once()

		w := serve(router, "/api/prefixes/123456789/handles?offset=1&limit=1")

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListHandlesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "123456789", response.Prefix)
		assert.Equal(t, 3, response.Total)
		assert.Equal(t, []string{"123456789/2"}, response.Handles)
	})

	t.Run("Success_EmptyPrefix", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetHandlesForNA(mock.Anything, []byte("0.NA/999")).
			Return(slices.Values([][]byte{}), nil).
			Once()

		w := serve(router, "/api/prefixes/999/handles")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"prefix":"999","total":0,"handles":[]}`, w.Body.String())
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, "/api/prefixes/123456789/handles?offset=-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_StorageFailure", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			GetHandlesForNA(mock.Anything, mock.Anything).
			Return(nil, domain.NewProtocolError("getHandlesForNA", "0.NA/123456789", errors.New("boom"))).
			Once()

		w := serve(router, "/api/prefixes/123456789/handles")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleHandler_AuthorityHandler(t *testing.T) {
	t.Run("Success_Authoritative", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().HaveNA(mock.Anything, []byte("0.NA/123456789")).Return(true, nil).Once()

		w := serve(router, "/api/authority?na=0.NA/123456789")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"na":"0.NA/123456789","authoritative":true}`, w.Body.String())
	})

	t.Run("Success_NotAuthoritative", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().HaveNA(mock.Anything, []byte("0.NA/999")).Return(false, nil).Once()

		w := serve(router, "/api/authority?na=0.NA/999")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"na":"0.NA/999","authoritative":false}`, w.Body.String())
	})

	t.Run("Error_MissingNA", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, "/api/authority")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandleHandler_MetadataHandler(t *testing.T) {
	t.Run("Success_OrderedFields", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().
			HandleMetadata(mock.Anything, []byte("123456789/1")).
			Return(domain.Metadata{
				{Name: domain.FieldTitle, Value: "A Title"},
				{Name: domain.FieldRepository, Value: "Repo"},
			}, nil).
			Once()
		storage.EXPECT().
			RepositoryInfo(mock.Anything).
			Return(domain.RepositoryInfo{Name: "Repo", CanonicalPrefix: "http://hdl.handle.net/"}, nil).
			Once()

		w := serve(router, "/api/metadata/123456789/1")

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.MetadataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "http://hdl.handle.net/123456789/1", response.CanonicalURL)
		assert.Equal(t, []dto.MetadataField{
			{Name: "TITLE", Value: "A Title"},
			{Name: "REPOSITORY", Value: "Repo"},
		}, response.Fields)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, storage := setupTestRouter(t)

		storage.EXPECT().HandleMetadata(mock.Anything, []byte("123456789/404")).Return(nil, nil).Once()

		w := serve(router, "/api/metadata/123456789/404")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
