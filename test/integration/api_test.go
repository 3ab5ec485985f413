// Package integration provides end-to-end tests for the resolver API.
// Tests run against both PostgreSQL and MySQL and are skipped when a
// database is not reachable.
package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarin-dspace/handle-resolver/internal/app"
	"github.com/clarin-dspace/handle-resolver/internal/config"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
	"github.com/clarin-dspace/handle-resolver/internal/handle/http/dto"
	"github.com/clarin-dspace/handle-resolver/internal/testutil"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	dbDriver  string
}

// makeRequest performs a GET request without following redirects.
func (ctx *integrationTestContext) makeRequest(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ctx.server.URL+path, nil)
	require.NoError(t, err, "failed to create request")

	client := &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, body
}

// setupIntegrationTest seeds the store and starts the API on an httptest server.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		testutil.SkipIfNoPostgres(t)
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		testutil.SkipIfNoMySQL(t)
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	t.Setenv(config.EnvKey(config.KeyHandlePrefix), "11234")
	t.Setenv(config.EnvKey(config.KeyUIURL), "http://repo.example.org/")
	t.Setenv(config.EnvKey(config.KeyRepositoryName), "Test Repository")
	t.Setenv(config.EnvKey(config.KeyRepositoryEmail), "help@example.org")

	itemID := testutil.CreateTestHandle(t, db, dbDriver, "11234/1", int(domain.ResourceItem))
	testutil.CreateTestHandle(t, db, dbDriver, "11234/2", int(domain.ResourceCollection))
	testutil.CreateTestURLHandle(t, db, dbDriver, "11234/ext", "http://example.org/ext")
	testutil.CreateTestMetadataValue(t, db, dbDriver, itemID, domain.DCTitle, "Treebank", 0)
	testutil.CreateTestMetadataValue(t, db, dbDriver, itemID, domain.DCDateAccessioned, "2020-01-01T00:00:00Z", 0)

	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   dsn,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		ShutdownTimeout:      5 * time.Second,
	}

	container := app.NewContainer(cfg)

	storage, err := container.HandleStorage()
	require.NoError(t, err, "failed to get handle storage")
	require.NoError(t, storage.Init(context.Background(), nil), "failed to start kernel")

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    httptest.NewServer(handler),
		dbDriver:  dbDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}
}

var drivers = []string{"postgres", "mysql"}

func TestIntegration_Health_BasicChecks(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			defer teardownIntegrationTest(t, ctx)

			resp, body := ctx.makeRequest(t, "/health")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"healthy"}`, string(body))

			resp, body = ctx.makeRequest(t, "/ready")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"ready","components":{"kernel":"ok"}}`, string(body))
		})
	}
}

func TestIntegration_Resolution_CompleteFlow(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			defer teardownIntegrationTest(t, ctx)

			t.Run("item resolves to ui url", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, "/api/handles/11234/1")
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var lookup dto.LookupResponse
				require.NoError(t, json.Unmarshal(body, &lookup))
				assert.Equal(t, dto.ResponseCodeSuccess, lookup.ResponseCode)
				require.Len(t, lookup.Values, 1)
				assert.Equal(t, int32(100), lookup.Values[0].Index)
				assert.Equal(t, "URL", lookup.Values[0].Type)
				assert.Equal(t, "http://repo.example.org/handle/11234/1", lookup.Values[0].Data.Value)
			})

			t.Run("explicit url wins", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, "/resolve/11234/ext")
				require.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Equal(t, "http://example.org/ext", resp.Header.Get("Location"))
			})

			t.Run("unknown handle", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, "/api/handles/11234/404")
				require.Equal(t, http.StatusNotFound, resp.StatusCode)

				var lookup dto.LookupResponse
				require.NoError(t, json.Unmarshal(body, &lookup))
				assert.Equal(t, dto.ResponseCodeNotFound, lookup.ResponseCode)
			})
		})
	}
}

func TestIntegration_AuthorityAndEnumeration(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			defer teardownIntegrationTest(t, ctx)

			resp, body := ctx.makeRequest(t, "/api/authority?na=0.NA/11234")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"na":"0.NA/11234","authoritative":true}`, string(body))

			resp, body = ctx.makeRequest(t, "/api/authority?na=0.NA/99999")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"na":"0.NA/99999","authoritative":false}`, string(body))

			resp, body = ctx.makeRequest(t, "/api/prefixes/11234/handles")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var list dto.ListHandlesResponse
			require.NoError(t, json.Unmarshal(body, &list))
			assert.Equal(t, 3, list.Total)
			assert.Equal(t, []string{"11234/1", "11234/2", "11234/ext"}, list.Handles)
		})
	}
}

func TestIntegration_Metadata(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			defer teardownIntegrationTest(t, ctx)

			resp, body := ctx.makeRequest(t, "/api/metadata/11234/1")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var md dto.MetadataResponse
			require.NoError(t, json.Unmarshal(body, &md))
			assert.Equal(t, "http://hdl.handle.net/11234/1", md.CanonicalURL)
			assert.Equal(t, []dto.MetadataField{
				{Name: "TITLE", Value: "Treebank"},
				{Name: "REPOSITORY", Value: "Test Repository"},
				{Name: "SUBMITDATE", Value: "2020-01-01T00:00:00Z"},
				{Name: "REPORTEMAIL", Value: "help@example.org"},
			}, md.Fields)

			resp, body = ctx.makeRequest(t, "/api/metadata/11234/2")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.NoError(t, json.Unmarshal(body, &md))
			assert.Empty(t, md.Fields)
		})
	}
}
