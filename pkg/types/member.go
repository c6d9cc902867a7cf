package types

// CommunityMember is a staff or volunteer profile shown in the community
// section.
type CommunityMember struct {
	Meta
	Name       string  `db:"name" form:"name" validate:"required"`
	Role       string  `db:"role" form:"role"`
	ImageURL   *string `db:"image_url" form:"imageUrl"`
	OrderIndex int     `db:"order_index" form:"orderIndex"`
}
