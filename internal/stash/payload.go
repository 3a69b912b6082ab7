package stash

import (
	"crypto/sha256"
	"fmt"
)

type payloadKind int

const (
	payloadBytes payloadKind = iota
	payloadUnsigned
	payloadNone
)

// Payload describes a request body for signing purposes.
type Payload struct {
	kind payloadKind
	data []byte
}

// Bytes creates a payload whose hash covers the given data.
func Bytes(data []byte) Payload {
	return Payload{payloadBytes, data}
}

// Unsigned creates a payload whose integrity is not covered by the signature.
func Unsigned() Payload {
	return Payload{kind: payloadUnsigned}
}

// None creates an empty payload.
func None() Payload {
	return Payload{kind: payloadNone}
}

// Hash returns the payload hash used in the canonical request.
func (p Payload) Hash() string {
	switch p.kind {
	case payloadUnsigned:
		return UnsignedPayload
	case payloadNone:
		return EmptyHash
	}
	return fmt.Sprintf("%x", sha256.Sum256(p.data))
}

// Data returns the raw bytes for payloads created from data.
func (p Payload) Data() []byte {
	return p.data
}
