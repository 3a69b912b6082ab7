package loft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedTemplate(pattern string) Template {
	template := NewTemplate(pattern)
	template.time = func() time.Time {
		return time.Date(2015, time.August, 30, 12, 36, 0, 0, time.UTC)
	}
	return template
}

func TestTemplateResolve(t *testing.T) {
	entity := Entity{Name: "report", Extension: "pdf"}

	assert.Equal(t, "/2015/08/30/report.pdf", fixedTemplate("").Resolve(entity))
	assert.Equal(t, "/report.pdf", fixedTemplate("/{name}.{ext}").Resolve(entity))
	assert.Equal(t, "/uploads/report", fixedTemplate("/uploads/{name}").Resolve(entity))
}
