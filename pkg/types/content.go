package types

import "time"

// Meta carries the columns shared by every content row. Embed it in a row
// struct; scany flattens embedded structs so the db tags map as usual.
type Meta struct {
	ID        string    `db:"id" form:"-"`
	CreatedAt time.Time `db:"created_at" form:"-"`
	UpdatedAt time.Time `db:"updated_at" form:"-"`
}

func (m *Meta) RowMeta() *Meta { return m }
