package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/database"
	apperrors "github.com/clarin-dspace/handle-resolver/internal/errors"
)

// MySQLMetadataRepository reads object metadata values from MySQL.
type MySQLMetadataRepository struct {
	db *sql.DB
}

// GetValues returns the values of field for the object, ordered by place.
func (m *MySQLMetadataRepository) GetValues(
	ctx context.Context,
	resourceID uuid.UUID,
	field string,
) ([]string, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := resourceID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal resource id")
	}

	query := `SELECT text_value FROM metadata_values
			  WHERE resource_id = ? AND field = ?
			  ORDER BY place`

	rows, err := querier.QueryContext(ctx, query, id, field)
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

// NewMySQLMetadataRepository creates a new MySQL metadata repository.
func NewMySQLMetadataRepository(db *sql.DB) *MySQLMetadataRepository {
	return &MySQLMetadataRepository{db: db}
}
