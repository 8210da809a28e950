package auth

import (
	"context"

	"techrent/internal/domain"
)

// AccountReader is what login needs from the identity store.
type AccountReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	CheckPassword(u *domain.User, password string) bool
	RolesFor(ctx context.Context, userID string) ([]string, error)
}

type TokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
}
