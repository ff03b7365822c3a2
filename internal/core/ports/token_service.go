package ports

import "github.com/freelancer-toolkit/api/internal/core/domain"

// Claims is the verified identity carried by a session token.
// Values are trusted only after TokenService.Verify succeeds.
type Claims struct {
	UserID string
	Role   string
	Email  string
}

// TokenService mints and verifies signed, time-boxed identity assertions.
type TokenService interface {
	// Issue produces a signed token embedding the user's id, role and email.
	Issue(user *domain.User) (string, error)
	// Verify checks signature, expiry, issuer and audience, and returns the
	// decoded claims. Fails with domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Verify(token string) (*Claims, error)
}
