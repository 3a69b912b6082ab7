package loft

import (
	"strings"
	"time"
)

// Resolver derives the object key for a normalized entity.
type Resolver interface {
	Resolve(e Entity) string
}

// DefaultTemplate stores objects under a date prefix.
const DefaultTemplate = "/{date}/{name}.{ext}"

// Template resolves object keys from a pattern. Supported placeholders are
// {date}, {name}, and {ext}.
type Template struct {
	pattern string
	time    func() time.Time
}

// NewTemplate creates a template, falling back to DefaultTemplate when the
// pattern is empty.
func NewTemplate(pattern string) Template {
	if pattern == "" {
		pattern = DefaultTemplate
	}
	return Template{
		pattern: pattern,
		time: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Resolve substitutes the entity fields into the pattern.
func (t Template) Resolve(e Entity) string {
	r := strings.NewReplacer(
		"{date}", t.time().Format("2006/01/02"),
		"{name}", e.Name,
		"{ext}", e.Extension,
	)
	return r.Replace(t.pattern)
}
