package ports

import (
	"context"

	"github.com/freelancer-toolkit/api/internal/core/domain"
)

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	// Register creates an account and returns it with a freshly minted token.
	// The role is always "user"; promotion happens via the admin endpoints.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a token plus the user.
	// Suspended accounts fail with domain.ErrAccountSuspended before success.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the caller's account by verified token subject.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
