package loft

import (
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeRunes = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Entity is a file to be stored.
type Entity struct {
	Name      string
	Extension string
	Mime      string
	Data      []byte
}

// NewEntity builds an entity from a file name and contents.
func NewEntity(name string, data []byte) Entity {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return Entity{Name: base, Extension: ext, Data: data}
}

// Normalize returns a copy with the name sanitized and the extension and mime
// type filled in from one another. It fails when the entity carries no data,
// when the name is unusable, or when neither file type field can be resolved.
func (e Entity) Normalize() (Entity, error) {
	if len(e.Data) == 0 {
		return Entity{}, fmt.Errorf("entity '%s' has no data", e.Name)
	}

	e.Name = sanitize(e.Name)
	if e.Name == "" {
		return Entity{}, fmt.Errorf("entity has no usable name")
	}

	if e.Extension == "" && e.Mime != "" {
		exts, err := mime.ExtensionsByType(e.Mime)
		if err != nil || len(exts) == 0 {
			return Entity{}, fmt.Errorf("no extension known for mime type '%s'", e.Mime)
		}
		e.Extension = strings.TrimPrefix(exts[0], ".")
	}

	if e.Mime == "" && e.Extension != "" {
		e.Mime = mime.TypeByExtension("." + e.Extension)
	}

	if e.Extension == "" || e.Mime == "" {
		return Entity{}, fmt.Errorf("cannot determine the file type of '%s'", e.Name)
	}
	return e, nil
}

func sanitize(name string) string {
	return strings.Trim(unsafeRunes.ReplaceAllString(name, "-"), "-")
}
