package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
)

func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleVendor
}

// User holds the stored form of an account. Email is the AES-encrypted
// column value; the plaintext only exists inside the auth service.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"emailid"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
