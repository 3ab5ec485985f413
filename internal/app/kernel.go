package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	"github.com/clarin-dspace/handle-resolver/internal/database"
	"github.com/clarin-dspace/handle-resolver/internal/handle/repository"
	"github.com/clarin-dspace/handle-resolver/internal/handle/usecase"
	"github.com/clarin-dspace/handle-resolver/internal/kernel"
	"github.com/clarin-dspace/handle-resolver/internal/metrics"
)

type connectFunc func(ctx context.Context, cfg database.Config) (*sql.DB, error)

// serviceKernel is the production kernel: repository properties, the
// database and the handle use case built on them.
type serviceKernel struct {
	cfg             *config.Config
	logger          *slog.Logger
	businessMetrics metrics.BusinessMetrics
	connect         connectFunc

	db      atomic.Pointer[sql.DB]
	handles usecase.HandleUseCase
	running atomic.Bool
}

var _ kernel.Kernel = (*serviceKernel)(nil)

func newServiceKernel(cfg *config.Config, logger *slog.Logger, bm metrics.BusinessMetrics) *serviceKernel {
	return &serviceKernel{
		cfg:             cfg,
		logger:          logger,
		businessMetrics: bm,
		connect:         database.Connect,
	}
}

func (k *serviceKernel) Start(ctx context.Context) error {
	props, err := config.LoadProperties(k.cfg.PropertiesFile)
	if err != nil {
		return err
	}

	db, err := k.connect(ctx, database.Config{
		Driver:             k.cfg.DBDriver,
		ConnectionString:   k.cfg.DBConnectionString,
		MaxOpenConnections: k.cfg.DBMaxOpenConnections,
		MaxIdleConnections: k.cfg.DBMaxIdleConnections,
		ConnMaxLifetime:    k.cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	k.db.Store(db)

	var (
		handleRepo   usecase.HandleRepository
		metadataRepo usecase.MetadataRepository
	)
	switch k.cfg.DBDriver {
	case database.DriverMySQL:
		handleRepo = repository.NewMySQLHandleRepository(db)
		metadataRepo = repository.NewMySQLMetadataRepository(db)
	case database.DriverPostgres:
		handleRepo = repository.NewPostgreSQLHandleRepository(db)
		metadataRepo = repository.NewPostgreSQLMetadataRepository(db)
	default:
		return fmt.Errorf("unsupported database driver: %s", k.cfg.DBDriver)
	}

	handles := usecase.NewHandleUseCase(database.NewTxManager(db), handleRepo, metadataRepo, props)
	if k.businessMetrics != nil {
		handles = usecase.NewHandleUseCaseWithMetrics(handles, k.businessMetrics)
	}
	k.handles = handles

	k.running.Store(true)
	k.logger.Info("service kernel started",
		slog.String("driver", k.cfg.DBDriver),
		slog.String("properties_file", k.cfg.PropertiesFile),
	)
	return nil
}

// Destroy closes the database. It is safe after a failed Start.
func (k *serviceKernel) Destroy(ctx context.Context) error {
	k.running.Store(false)
	db := k.db.Swap(nil)
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("database close: %w", err)
	}
	return nil
}

func (k *serviceKernel) IsRunning() bool {
	return k.running.Load()
}

func (k *serviceKernel) Ping(ctx context.Context) error {
	db := k.db.Load()
	if db == nil {
		return fmt.Errorf("database not connected")
	}
	return db.PingContext(ctx)
}

func (k *serviceKernel) Handles() usecase.HandleUseCase {
	return k.handles
}
