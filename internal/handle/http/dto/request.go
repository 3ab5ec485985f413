// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"fmt"
	"strconv"

	validation "github.com/jellydator/validation"

	customValidation "github.com/clarin-dspace/handle-resolver/internal/validation"
)

// LookupRequest selects the values of one handle. Index and type filters are
// forwarded to the storage as given.
type LookupRequest struct {
	Handle  string
	Indexes []int32
	Types   [][]byte
}

// NewLookupRequest parses the raw "index" and "type" query values.
func NewLookupRequest(handle string, indexes, types []string) (LookupRequest, error) {
	req := LookupRequest{Handle: handle}

	for _, raw := range indexes {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return LookupRequest{}, fmt.Errorf("invalid index parameter %q: must be a 32-bit integer", raw)
		}
		req.Indexes = append(req.Indexes, int32(n))
	}
	for _, t := range types {
		req.Types = append(req.Types, []byte(t))
	}

	return req, nil
}

// Validate checks if the lookup request is valid.
func (r *LookupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Handle,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.HandleSyntax,
		),
	)
}

// AuthorityRequest asks whether a naming authority is served here.
type AuthorityRequest struct {
	NA string `form:"na"`
}

// Validate checks if the authority request is valid.
func (r *AuthorityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.NA,
			validation.Required,
			customValidation.NamingAuthority,
		),
	)
}

// ListHandlesRequest enumerates the handles under a prefix.
type ListHandlesRequest struct {
	Prefix string
	Offset int
	Limit  int
}

// Validate checks if the list request is valid.
func (r *ListHandlesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Prefix,
			validation.Required,
			customValidation.Prefix,
		),
	)
}
