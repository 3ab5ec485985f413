package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/database"
	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// PostgreSQLHandleRepository reads handles from PostgreSQL.
type PostgreSQLHandleRepository struct {
	db *sql.DB
}

// GetByHandle returns the row for handle or apperrors.ErrNotFound.
func (p *PostgreSQLHandleRepository) GetByHandle(ctx context.Context, handle string) (*domain.Handle, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, handle, resource_type_id, resource_id, url
			  FROM handles
			  WHERE handle = $1`

	var row handleRow
	var resourceID uuid.NullUUID
	err := querier.QueryRowContext(ctx, query, handle).Scan(
		&row.id,
		&row.handle,
		&row.resourceType,
		&resourceID,
		&row.url,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get handle")
	}

	var id *uuid.UUID
	if resourceID.Valid {
		id = &resourceID.UUID
	}
	return row.toDomain(id), nil
}

// ListByPrefix returns every handle under prefix.
func (p *PostgreSQLHandleRepository) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT handle FROM handles WHERE handle LIKE $1 ESCAPE '\'`

	rows, err := querier.QueryContext(ctx, query, prefixPattern(prefix))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list handles")
	}
	defer func() {
		_ = rows.Close()
	}()

	handles, err := collectStrings(rows)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan handles")
	}
	return handles, nil
}

// HasPrefix reports whether at least one handle is stored under prefix.
func (p *PostgreSQLHandleRepository) HasPrefix(ctx context.Context, prefix string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT 1 FROM handles WHERE handle LIKE $1 ESCAPE '\' LIMIT 1`

	var one int
	err := querier.QueryRowContext(ctx, query, prefixPattern(prefix)).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.Wrap(err, "failed to check prefix")
	}
	return true, nil
}

// NewPostgreSQLHandleRepository creates a new PostgreSQL handle repository.
func NewPostgreSQLHandleRepository(db *sql.DB) *PostgreSQLHandleRepository {
	return &PostgreSQLHandleRepository{db: db}
}
