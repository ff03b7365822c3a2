// Package bootstrap performs one-time startup provisioning.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// EnsureAdmin creates the seed admin account when email and password are both
// configured and no account with that email exists yet. An existing account is
// promoted to admin if it somehow lost the role.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, email, password string, log zerolog.Logger) error {
	if email == "" || password == "" {
		log.Debug().Msg("admin seed skipped: credentials not configured")
		return nil
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			if err := users.UpdateRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
				return fmt.Errorf("promote seed admin: %w", err)
			}
			log.Info().Str("email", email).Msg("existing account promoted to admin")
		}
		return nil
	case errors.Is(err, domain.ErrUserNotFound):
		// fall through to create
	default:
		return fmt.Errorf("lookup seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	if _, err := users.Create(ctx, &domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}); err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("create seed admin: %w", err)
	}

	log.Info().Str("email", email).Msg("seed admin account created")
	return nil
}
