package server

import (
	"net/http"

	"lumiere/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	userID, _ := r.Context().Value(contextKeyUserID).(string)
	userEmail, _ := r.Context().Value(contextKeyEmail).(string)

	if setter, ok := data.(types.NavbarDataSetter); ok {
		setter.SetNavbarData(types.NavbarData{
			IsAuthenticated: userID != "",
			UserEmail:       userEmail,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}

// orFallback substitutes the fixed default set when a category has no rows.
// Public sections always render something; visitors never see an empty or
// errored section.
func orFallback[T any](fetched []T, fallback []T) []T {
	if len(fetched) > 0 {
		return fetched
	}
	return fallback
}

// galleryGridClass assigns each gallery tile its slot in the fixed visual
// pattern: every sixth tile (offset 0) renders wide, every sixth (offset 3)
// renders tall, the rest are square.
func galleryGridClass(index int) string {
	switch index % 6 {
	case 0:
		return "tile-wide"
	case 3:
		return "tile-tall"
	default:
		return "tile-square"
	}
}

func filterGalleryItems(items []*types.GalleryItem, category string) []*types.GalleryItem {
	if category == "" {
		return items
	}
	out := make([]*types.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// paginate slices one page out of the filtered list. Pages are 1-based; an
// out-of-range page clamps to the nearest valid page.
func paginate[T any](items []T, page, perPage int) (pageItems []T, currentPage, totalPages int) {
	if perPage <= 0 {
		perPage = 9
	}

	totalPages = (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], page, totalPages
}
