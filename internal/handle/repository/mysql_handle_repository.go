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

// MySQLHandleRepository reads handles from MySQL. Resource ids are stored as BINARY(16).
type MySQLHandleRepository struct {
	db *sql.DB
}

// GetByHandle returns the row for handle or apperrors.ErrNotFound.
func (m *MySQLHandleRepository) GetByHandle(ctx context.Context, handle string) (*domain.Handle, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, handle, resource_type_id, resource_id, url
			  FROM handles
			  WHERE handle = ?`

	var row handleRow
	var resourceID []byte
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
	if len(resourceID) > 0 {
		parsed, err := uuid.FromBytes(resourceID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal resource id")
		}
		id = &parsed
	}
	return row.toDomain(id), nil
}

// ListByPrefix returns every handle under prefix.
func (m *MySQLHandleRepository) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT handle FROM handles WHERE handle LIKE ?`

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
func (m *MySQLHandleRepository) HasPrefix(ctx context.Context, prefix string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT 1 FROM handles WHERE handle LIKE ? LIMIT 1`

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

// NewMySQLHandleRepository creates a new MySQL handle repository.
func NewMySQLHandleRepository(db *sql.DB) *MySQLHandleRepository {
	return &MySQLHandleRepository{db: db}
}
