package entity

import (
	"time"
)

// Base carries the serial primary key and creation timestamp the storage
// layer generates on insert.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
