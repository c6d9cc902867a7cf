package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Store uploads media files and returns a publicly addressable URL per
// object. Uploads are single-shot: no chunking, no resume, no cleanup of
// partial writes.
type Store interface {
	Upload(ctx context.Context, bucket, objectName string, body io.Reader, contentType string) (string, error)
}

// ObjectName builds a collision-resistant object key: a category prefix, a
// millisecond timestamp, and the sanitized original filename.
func ObjectName(prefix, filename string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
