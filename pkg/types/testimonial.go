package types

type Testimonial struct {
	Meta
	Name       string  `db:"name" form:"name" validate:"required"`
	Role       string  `db:"role" form:"role"`
	Text       string  `db:"text" form:"text" validate:"required"`
	Rating     int     `db:"rating" form:"rating" validate:"min=1,max=5"`
	ImageURL   *string `db:"image_url" form:"imageUrl"`
	OrderIndex int     `db:"order_index" form:"orderIndex"`
}
