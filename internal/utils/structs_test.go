package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type embeddedMeta struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type sampleRow struct {
	embeddedMeta
	Title      string  `db:"title"`
	ImageURL   *string `db:"image_url"`
	OrderIndex int     `db:"order_index"`
	Skipped    string  `db:"-"`
	Untagged   string
}

func TestStructTagValues(t *testing.T) {
	columns := StructTagValues(sampleRow{})
	assert.Equal(t, []string{"id", "created_at", "title", "image_url", "order_index"}, columns)
}

func TestStructToMap(t *testing.T) {
	url := "https://cdn.example.com/img.jpg"
	row := &sampleRow{
		embeddedMeta: embeddedMeta{ID: "abc123"},
		Title:        "Culte du Dimanche",
		ImageURL:     &url,
		OrderIndex:   3,
		Skipped:      "never",
		Untagged:     "never",
	}

	m := StructToMap(row)

	assert.Equal(t, "abc123", m["id"])
	assert.Equal(t, "Culte du Dimanche", m["title"])
	assert.Equal(t, &url, m["image_url"])
	assert.Equal(t, 3, m["order_index"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 5)
}
