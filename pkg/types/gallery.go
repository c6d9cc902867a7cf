package types

// GalleryCategories is the fixed category filter set for the photo gallery.
var GalleryCategories = []string{"Culte", "Célébration", "Événement", "Formation", "Rencontre"}

type GalleryItem struct {
	Meta
	Title      string  `db:"title" form:"title" validate:"required"`
	Category   string  `db:"category" form:"category" validate:"required,gallery_category"`
	Date       string  `db:"date" form:"date"`
	Attendees  int     `db:"attendees" form:"attendees" validate:"min=0"`
	ImageURL   *string `db:"image_url" form:"imageUrl"`
	OrderIndex int     `db:"order_index" form:"orderIndex"`
}

func ValidGalleryCategory(category string) bool {
	for _, c := range GalleryCategories {
		if c == category {
			return true
		}
	}
	return false
}
