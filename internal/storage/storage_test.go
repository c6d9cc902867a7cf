package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("video", "mon clip (final).mp4")
	assert.Regexp(t, regexp.MustCompile(`^video-\d+-mon_clip_final\.mp4$`), name)
}

func TestObjectNameEmptyFilename(t *testing.T) {
	name := ObjectName("thumb", "???")
	assert.Regexp(t, regexp.MustCompile(`^thumb-\d+-file$`), name)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":       "photo.jpg",
		"a b-c_d.e":       "a_b-c_d.e",
		"weird/..//path":  "weird..path",
		"UPPER-case.WEBM": "UPPER-case.WEBM",
	}

	for in, want := range cases {
		assert.Equal(t, want, sanitizeFilename(in), "input %q", in)
	}
}
