// Package repository implements read access to the identifier store and the
// object metadata store on PostgreSQL and MySQL.
package repository

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// prefixPattern returns a LIKE pattern matching every handle under prefix.
func prefixPattern(prefix string) string {
	return likeEscaper.Replace(prefix) + "/%"
}

// handleRow holds the nullable columns shared by both drivers.
type handleRow struct {
	id           int64
	handle       string
	resourceType sql.NullInt32
	url          sql.NullString
}

func (r handleRow) toDomain(resourceID *uuid.UUID) *domain.Handle {
	h := &domain.Handle{ID: r.id, Handle: r.handle, ResourceID: resourceID}
	if r.resourceType.Valid {
		t := domain.ResourceType(r.resourceType.Int32)
		h.ResourceType = &t
	}
	if r.url.Valid && r.url.String != "" {
		u := r.url.String
		h.URL = &u
	}
	return h
}

func collectStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
