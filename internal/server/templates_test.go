package server

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	pages := []string{
		"page.home", "page.gallery", "page.login",
		"page.admin", "page.admin.features", "page.admin.services",
		"page.admin.events", "page.admin.testimonials", "page.admin.members",
		"page.admin.podcasts", "page.admin.videos", "page.admin.gallery",
		"page.admin.content",
	}
	for _, name := range pages {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

// Success notices disappear on their own after three seconds.
func TestNoticeAutoDismissDelay(t *testing.T) {
	data, err := fs.ReadFile(uiFS, "templates/layout.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "}, 3000);")
}
