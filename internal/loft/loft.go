package loft

import (
	"context"
	"fmt"
	"strings"
)

// Backend is the capability set a configured storage driver provides.
type Backend interface {
	Upload(ctx context.Context, data []byte, path, acl string) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// Loft stores files in a configured backend under templated object keys.
type Loft struct {
	backend  Backend
	resolver Resolver
}

// New assembles a facade from a backend and a key resolver.
func New(backend Backend, resolver Resolver) *Loft {
	return &Loft{backend, resolver}
}

// Upload normalizes the entity, resolves its object key, and stores the data.
// The resolved key must start with '/'; this is checked before any network
// operation is attempted.
func (l *Loft) Upload(ctx context.Context, entity Entity) (string, error) {
	if l.backend == nil {
		return "", fmt.Errorf("no storage backend configured")
	}

	normalized, err := entity.Normalize()
	if err != nil {
		return "", err
	}

	key := l.resolver.Resolve(normalized)
	if !strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("object key '%s' must start with '/'", key)
	}

	path, err := l.backend.Upload(ctx, normalized.Data, key, PublicRead)
	if err != nil {
		return "", err
	}

	Logger.Debug().Str("key", path).Msg("uploaded object")
	return path, nil
}

// Get retrieves the object stored under key.
func (l *Loft) Get(ctx context.Context, key string) ([]byte, error) {
	if l.backend == nil {
		return nil, fmt.Errorf("no storage backend configured")
	}

	if !strings.HasPrefix(key, "/") {
		return nil, fmt.Errorf("object key '%s' must start with '/'", key)
	}
	return l.backend.Get(ctx, key)
}

// Delete removes the object stored under key.
func (l *Loft) Delete(ctx context.Context, key string) error {
	if l.backend == nil {
		return fmt.Errorf("no storage backend configured")
	}

	if !strings.HasPrefix(key, "/") {
		return fmt.Errorf("object key '%s' must start with '/'", key)
	}
	return l.backend.Delete(ctx, key)
}
