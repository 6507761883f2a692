package entity

// CartLine is one (user, product) row in the cart. The table enforces a
// uniqueness constraint on the pair; AddItem upserts against it.
type CartLine struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

// CartLineDetail is a cart line joined with its product's display fields.
type CartLineDetail struct {
	CartLine
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	ImageURL string  `db:"image_url"`
}
