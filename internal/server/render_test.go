package server

import (
	"testing"

	"lumiere/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestOrFallback(t *testing.T) {
	fallback := []int{1, 2, 3}

	assert.Equal(t, []int{9}, orFallback([]int{9}, fallback))
	assert.Equal(t, fallback, orFallback(nil, fallback))
	assert.Equal(t, fallback, orFallback([]int{}, fallback))
}

func TestGalleryGridClass(t *testing.T) {
	expected := []string{
		"tile-wide", "tile-square", "tile-square",
		"tile-tall", "tile-square", "tile-square",
		"tile-wide", "tile-square",
	}

	for i, want := range expected {
		assert.Equal(t, want, galleryGridClass(i), "index %d", i)
	}
}

func TestFilterGalleryItems(t *testing.T) {
	items := []*types.GalleryItem{
		{Title: "Baptêmes", Category: "Culte"},
		{Title: "Noël", Category: "Célébration"},
		{Title: "Louange", Category: "Culte"},
	}

	assert.Len(t, filterGalleryItems(items, ""), 3)

	cultes := filterGalleryItems(items, "Culte")
	assert.Len(t, cultes, 2)
	for _, item := range cultes {
		assert.Equal(t, "Culte", item.Category)
	}

	assert.Empty(t, filterGalleryItems(items, "Formation"))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	page, current, total := paginate(items, 1, 9)
	assert.Len(t, page, 9)
	assert.Equal(t, 1, current)
	assert.Equal(t, 3, total)
	assert.Equal(t, 0, page[0])

	page, current, _ = paginate(items, 3, 9)
	assert.Len(t, page, 2)
	assert.Equal(t, 3, current)
	assert.Equal(t, 18, page[0])

	// Out-of-range pages clamp instead of erroring.
	_, current, _ = paginate(items, 99, 9)
	assert.Equal(t, 3, current)
	_, current, _ = paginate(items, -5, 9)
	assert.Equal(t, 1, current)

	// An empty list still reports one (empty) page.
	page, current, total = paginate([]int{}, 1, 9)
	assert.Empty(t, page)
	assert.Equal(t, 1, current)
	assert.Equal(t, 1, total)
}
