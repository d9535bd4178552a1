package profile

import "context"

const (
	Table     = "users"
	RoleStaff = "staff"
)

// Profile is the application-level user record, distinct from the
// authentication identity.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store persists profile rows.
type Store interface {
	Insert(ctx context.Context, p Profile) error
}
