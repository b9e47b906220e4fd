package auth

// Claims is the identity asserted by the external identity provider.
type Claims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}
