package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Handle is a stored row of the identifier store.
type Handle struct {
	ID int64
	// Handle is the full identifier, e.g. "123456789/42".
	Handle string
	// ResourceType is nil for handles that are not bound to a repository object.
	ResourceType *ResourceType
	ResourceID   *uuid.UUID
	// URL overrides the repository URL when set.
	URL *string
}

// Prefix returns the naming authority part of the handle.
func (h *Handle) Prefix() string {
	return PrefixOf(h.Handle)
}

// Object returns the repository object the handle points at, or nil when the
// row carries no object binding.
func (h *Handle) Object() *Object {
	if h.ResourceType == nil || h.ResourceID == nil {
		return nil
	}
	return &Object{Type: *h.ResourceType, ID: *h.ResourceID, Handle: h.Handle}
}

// Object is a repository object reachable through a handle.
type Object struct {
	Type   ResourceType
	ID     uuid.UUID
	Handle string
}

// IsItem reports whether the object is an item.
func (o *Object) IsItem() bool {
	return o != nil && o.Type == ResourceItem
}

// RepositoryInfo is the repository configuration used by metadata pages.
type RepositoryInfo struct {
	Name            string
	Email           string
	CanonicalPrefix string
}

// CanonicalURL returns the canonical resolver URL of handle.
func (r RepositoryInfo) CanonicalURL(handle string) string {
	return r.CanonicalPrefix + handle
}

// PrefixOf returns the text before the first "/" of handle, or the whole
// handle when it has none.
func PrefixOf(handle string) string {
	prefix, _, _ := strings.Cut(handle, "/")
	return prefix
}

// TrimNA strips a leading "0.NA/" from a naming authority handle.
func TrimNA(na string) string {
	return strings.TrimPrefix(na, NAPrefix)
}
