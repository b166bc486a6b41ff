package ports

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	Issue(userID, role string) (string, error)
	// Verify returns domain.ErrInvalidToken for every failure mode
	// (malformed, forged, expired) so responses cannot be used as an
	// expiry-vs-tampering oracle.
	Verify(token string) (*TokenClaims, error)
}
