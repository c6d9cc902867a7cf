package types

type Event struct {
	Meta
	Date        string  `db:"date" form:"date" validate:"required"`
	Title       string  `db:"title" form:"title" validate:"required"`
	Description string  `db:"description" form:"description"`
	Attendees   string  `db:"attendees" form:"attendees"`
	ImageURL    *string `db:"image_url" form:"imageUrl"`
	OrderIndex  int     `db:"order_index" form:"orderIndex"`
}
