package entity

import (
	"time"
)

// Item is a catalog product listed by a vendor.
type Item struct {
	ItemID      int64     `db:"itemid"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Quantity    int       `db:"quantity"`
	ImageURL    string    `db:"image_url"`
	VendorID    int64     `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
