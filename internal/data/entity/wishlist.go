package entity

// WishlistItem is a (user, product) membership row, unique per pair.
type WishlistItem struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
}

// WishlistItemDetail joins the membership row with product display fields.
type WishlistItemDetail struct {
	ProductID int64   `db:"product_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	ImageURL  string  `db:"image_url"`
}
