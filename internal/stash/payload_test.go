package stash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadHash(t *testing.T) {
	assert.Equal(t, EmptyHash, None().Hash())
	assert.Equal(t, EmptyHash, Bytes(nil).Hash())
	assert.Equal(t, EmptyHash, Bytes([]byte{}).Hash())
	assert.Equal(t, UnsignedPayload, Unsigned().Hash())

	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		Bytes([]byte("hello world")).Hash(),
	)
}
