package loft

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadAll(t *testing.T) {
	backend := &fakeBackend{}
	facade := New(backend, fixedTemplate("/{name}.{ext}"))

	entities := []Entity{
		{Name: "one", Extension: "png", Data: []byte("aa")},
		{Name: "two", Extension: "png", Data: []byte("bbb")},
		{Name: "three", Extension: "png", Data: []byte("cccc")},
	}

	details, err := facade.UploadAll(context.Background(), entities, 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/one.png", "/two.png", "/three.png"}, details.Keys)
	assert.Equal(t, 9, details.Bytes)
	assert.Equal(t, 3, backend.uploads)
}

func TestUploadAllFailure(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("boom")}
	facade := New(backend, fixedTemplate("/{name}.{ext}"))

	entities := []Entity{
		{Name: "one", Extension: "png", Data: []byte("aa")},
	}

	_, err := facade.UploadAll(context.Background(), entities, 2)
	assert.Error(t, err)
}

func TestDetailsString(t *testing.T) {
	details := Details{
		Keys:  []string{"/one.png", "/two.png"},
		Bytes: 2048,
	}

	assert.Contains(t, details.String(), "2 objects")
	assert.Contains(t, details.String(), "2,048 bytes")
}
