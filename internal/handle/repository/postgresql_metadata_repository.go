package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/database"
	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
)

// PostgreSQLMetadataRepository reads object metadata values from PostgreSQL.
type PostgreSQLMetadataRepository struct {
	db *sql.DB
}

// GetValues returns the values of field for the object, ordered by place.
// A missing field yields an empty slice.
func (p *PostgreSQLMetadataRepository) GetValues(
	ctx context.Context,
	resourceID uuid.UUID,
	field string,
) ([]string, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT text_value FROM metadata_values
			  WHERE resource_id = $1 AND field = $2
			  ORDER BY place`

	rows, err := querier.QueryContext(ctx, query, resourceID, field)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get metadata values")
	}
	defer func() {
		_ = rows.Close()
	}()

	values, err := collectStrings(rows)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan metadata values")
	}
	return values, nil
}

// NewPostgreSQLMetadataRepository creates a new PostgreSQL metadata repository.
func NewPostgreSQLMetadataRepository(db *sql.DB) *PostgreSQLMetadataRepository {
	return &PostgreSQLMetadataRepository{db: db}
}
