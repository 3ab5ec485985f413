package domain

// NAPrefix is the prefix of every naming authority handle ("0.NA/<prefix>").
const NAPrefix = "0.NA/"

// DefaultCanonicalPrefix is used when handle.canonical.prefix is not configured.
const DefaultCanonicalPrefix = "http://hdl.handle.net/"

// ResourceType identifies the kind of object a handle points at.
type ResourceType int

// Resource types as stored in handles.resource_type_id.
const (
	ResourceBitstream  ResourceType = 0
	ResourceBundle     ResourceType = 1
	ResourceItem       ResourceType = 2
	ResourceCollection ResourceType = 3
	ResourceCommunity  ResourceType = 4
)

// String returns the lower case resource type name.
func (t ResourceType) String() string {
	switch t {
	case ResourceBitstream:
		return "bitstream"
	case ResourceBundle:
		return "bundle"
	case ResourceItem:
		return "item"
	case ResourceCollection:
		return "collection"
	case ResourceCommunity:
		return "community"
	default:
		return "unknown"
	}
}

// Fixed attributes of the synthesized URL resolution record.
const (
	URLValueIndex     int32 = 100
	URLValueTTLType   byte  = 0
	URLValueTTL       int32 = 100
	URLValueTimestamp int32 = 100
)

// URLValueType is the type of the synthesized resolution record.
var URLValueType = []byte("URL")
