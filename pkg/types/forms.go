package types

import "time"

// PrayerRequest is a visitor-submitted contact/prayer form entry.
type PrayerRequest struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       *string   `db:"email"`
	RequestBody string    `db:"request_body"`
	CreatedAt   time.Time `db:"created_at"`
}

type EmailSignup struct {
	Email     string    `db:"email"`
	City      *string   `db:"city"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
