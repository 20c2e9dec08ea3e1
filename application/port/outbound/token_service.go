package outbound

// TokenClaims is the decoded claim set of a verified bearer token.
// Roles are the ones baked in at issuance; they stay trusted for the
// token's lifetime even if the user's stored roles change.
type TokenClaims struct {
	Username string
	Roles    []string
}

// TokenService mints and verifies stateless bearer tokens. Verification
// is pure computation over the signed claims, no store round-trip.
type TokenService interface {
	Issue(subject string, roles []string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
