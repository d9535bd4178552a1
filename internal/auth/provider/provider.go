package provider

import (
	"context"

	"staff-service/internal/auth"
)

// IdentityProvider creates authentication accounts in an external auth
// service. Implementations must not write application profile data.
type IdentityProvider interface {
	// CreateUser creates an account with the given credentials.
	// A nil user with a nil error means the provider reported no user.
	CreateUser(
		ctx context.Context,
		email string,
		password string,
		emailConfirmed bool,
	) (*auth.User, error)
}
