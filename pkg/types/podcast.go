package types

type Podcast struct {
	Meta
	Title           string  `db:"title" form:"title" validate:"required"`
	Description     string  `db:"description" form:"description"`
	AudioURL        *string `db:"audio_url" form:"audioUrl"`
	Episode         string  `db:"episode" form:"episode"`
	Speaker         string  `db:"speaker" form:"speaker"`
	ImageURL        *string `db:"image_url" form:"imageUrl"`
	DurationSeconds int     `db:"duration_seconds" form:"durationSeconds" validate:"min=0"`
	Date            string  `db:"date" form:"date"`
}
