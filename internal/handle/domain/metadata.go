package domain

// FieldName names a metadata field rendered for a handle.
type FieldName string

// Metadata field names in rendering order.
const (
	FieldTitle       FieldName = "TITLE"
	FieldRepository  FieldName = "REPOSITORY"
	FieldSubmitDate  FieldName = "SUBMITDATE"
	FieldReportEmail FieldName = "REPORTEMAIL"
)

// Stored metadata fields read by the extractor.
const (
	DCTitle           = "dc.title"
	DCDateAccessioned = "dc.date.accessioned"
)

// Field is a single metadata entry.
type Field struct {
	Name  FieldName
	Value string
}

// Metadata is an ordered list of fields; order is significant for rendering.
type Metadata []Field

// Get returns the value of name and whether it is present.
func (m Metadata) Get(name FieldName) (string, bool) {
	for _, f := range m {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Names returns the field names in order.
func (m Metadata) Names() []FieldName {
	names := make([]FieldName, 0, len(m))
	for _, f := range m {
		names = append(names, f.Name)
	}
	return names
}
