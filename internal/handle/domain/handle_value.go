// Package domain defines the handle records, resolvable objects and errors
// shared by the resolver components.
package domain

// ValueReference points at a value of another handle.
type ValueReference struct {
	Handle []byte
	Index  int32
}

// HandleValue is one typed value of a handle record as the handle protocol
// sees it.
type HandleValue struct {
	Index      int32
	Type       []byte
	Data       []byte
	TTLType    byte
	TTL        int32
	Timestamp  int32
	References []ValueReference

	AdminRead   bool
	AdminWrite  bool
	PublicRead  bool
	PublicWrite bool
}

// NewURLValue returns the single resolution record synthesized for a
// resolved handle.
func NewURLValue(url string) HandleValue {
	return HandleValue{
		Index:       URLValueIndex,
		Type:        append([]byte(nil), URLValueType...),
		Data:        []byte(url),
		TTLType:     URLValueTTLType,
		TTL:         URLValueTTL,
		Timestamp:   URLValueTimestamp,
		AdminRead:   true,
		AdminWrite:  false,
		PublicRead:  true,
		PublicWrite: false,
	}
}

// TypeString returns the value type as a string.
func (v HandleValue) TypeString() string {
	return string(v.Type)
}

// DataString returns the value data as a string.
func (v HandleValue) DataString() string {
	return string(v.Data)
}
