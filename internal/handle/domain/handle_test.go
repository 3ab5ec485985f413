package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		want   string
	}{
		{name: "prefix and suffix", handle: "123456789/42", want: "123456789"},
		{name: "nested suffix", handle: "11234/1-2/3", want: "11234"},
		{name: "no slash", handle: "123", want: "123"},
		{name: "empty", handle: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixOf(tt.handle))
		})
	}
}

func TestTrimNA(t *testing.T) {
	assert.Equal(t, "123", TrimNA("0.NA/123"))
	assert.Equal(t, "123", TrimNA("123"))
}

func TestHandle_Object(t *testing.T) {
	id := uuid.New()
	item := ResourceItem

	t.Run("bound row", func(t *testing.T) {
		h := &Handle{Handle: "123/456", ResourceType: &item, ResourceID: &id}

		obj := h.Object()
		assert.NotNil(t, obj)
		assert.Equal(t, id, obj.ID)
		assert.Equal(t, "123/456", obj.Handle)
		assert.True(t, obj.IsItem())
		assert.Equal(t, "123", h.Prefix())
	})

	t.Run("unbound row", func(t *testing.T) {
		h := &Handle{Handle: "123/456"}
		assert.Nil(t, h.Object())
	})
}

func TestObject_IsItem(t *testing.T) {
	var nilObj *Object
	assert.False(t, nilObj.IsItem())
	assert.False(t, (&Object{Type: ResourceCollection}).IsItem())
	assert.Equal(t, "collection", ResourceCollection.String())
	assert.Equal(t, "unknown", ResourceType(99).String())
}

func TestMetadata(t *testing.T) {
	md := Metadata{
		{Name: FieldTitle, Value: "A title"},
		{Name: FieldRepository, Value: "Repo"},
	}

	v, ok := md.Get(FieldTitle)
	assert.True(t, ok)
	assert.Equal(t, "A title", v)

	_, ok = md.Get(FieldSubmitDate)
	assert.False(t, ok)

	assert.Equal(t, []FieldName{FieldTitle, FieldRepository}, md.Names())
}

func TestRepositoryInfo_CanonicalURL(t *testing.T) {
	info := RepositoryInfo{CanonicalPrefix: DefaultCanonicalPrefix}
	assert.Equal(t, "http://hdl.handle.net/123/456", info.CanonicalURL("123/456"))
}
