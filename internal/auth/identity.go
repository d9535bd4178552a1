package auth

// User is an authentication identity created by the identity provider.
// The provider owns it; this service only passes the id along.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
