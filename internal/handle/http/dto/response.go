package dto

import (
	"time"

	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// Response codes of the handle lookup API.
const (
	ResponseCodeSuccess  = 1
	ResponseCodeError    = 2
	ResponseCodeNotFound = 100
)

// ValueData is the payload of a handle value.
type ValueData struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

// ValueReferenceResponse is a reference carried by a handle value.
type ValueReferenceResponse struct {
	Handle string `json:"handle"`
	Index  int32  `json:"index"`
}

// HandleValueResponse represents one handle value in API responses.
type HandleValueResponse struct {
	Index       int32                    `json:"index"`
	Type        string                   `json:"type"`
	Data        ValueData                `json:"data"`
	TTL         int32                    `json:"ttl"`
	Timestamp   time.Time                `json:"timestamp"`
	AdminRead   bool                     `json:"adminRead"`
	AdminWrite  bool                     `json:"adminWrite"`
	PublicRead  bool                     `json:"publicRead"`
	PublicWrite bool                     `json:"publicWrite"`
	References  []ValueReferenceResponse `json:"references,omitempty"`
}

// LookupResponse is the body of GET /api/handles/*handle.
type LookupResponse struct {
	ResponseCode int                   `json:"responseCode"`
	Handle       string                `json:"handle"`
	Values       []HandleValueResponse `json:"values,omitempty"`
	Message      string                `json:"message,omitempty"`
}

// ListHandlesResponse is the body of GET /api/prefixes/:prefix/handles.
type ListHandlesResponse struct {
	Prefix  string   `json:"prefix"`
	Total   int      `json:"total"`
	Handles []string `json:"handles"`
}

// AuthorityResponse is the body of GET /api/authority.
type AuthorityResponse struct {
	NA            string `json:"na"`
	Authoritative bool   `json:"authoritative"`
}

// MetadataField is one named metadata value.
type MetadataField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MetadataResponse is the body of GET /api/metadata/*handle.
type MetadataResponse struct {
	Handle       string          `json:"handle"`
	CanonicalURL string          `json:"canonicalUrl"`
	Fields       []MetadataField `json:"fields"`
}

// MapHandleValue converts a decoded handle value to its API form.
func MapHandleValue(v domain.HandleValue) HandleValueResponse {
	resp := HandleValueResponse{
		Index:       v.Index,
		Type:        v.TypeString(),
		Data:        ValueData{Format: "string", Value: v.DataString()},
		TTL:         v.TTL,
		Timestamp:   time.Unix(int64(v.Timestamp), 0).UTC(),
		AdminRead:   v.AdminRead,
		AdminWrite:  v.AdminWrite,
		PublicRead:  v.PublicRead,
		PublicWrite: v.PublicWrite,
	}
	for _, ref := range v.References {
		resp.References = append(resp.References, ValueReferenceResponse{
			Handle: string(ref.Handle),
			Index:  ref.Index,
		})
	}
	return resp
}

// MapLookupResponse builds a successful lookup response.
func MapLookupResponse(handle string, values []domain.HandleValue) LookupResponse {
	resp := LookupResponse{
		ResponseCode: ResponseCodeSuccess,
		Handle:       handle,
		Values:       make([]HandleValueResponse, 0, len(values)),
	}
	for _, v := range values {
		resp.Values = append(resp.Values, MapHandleValue(v))
	}
	return resp
}

// MapMetadataResponse converts extracted metadata, keeping field order.
func MapMetadataResponse(handle string, md domain.Metadata, info domain.RepositoryInfo) MetadataResponse {
	resp := MetadataResponse{
		Handle:       handle,
		CanonicalURL: info.CanonicalURL(handle),
		Fields:       make([]MetadataField, 0, len(md)),
	}
	for _, f := range md {
		resp.Fields = append(resp.Fields, MetadataField{Name: string(f.Name), Value: f.Value})
	}
	return resp
}
