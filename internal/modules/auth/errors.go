package auth

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
)

// IdentityError carries the reasons an identity operation was refused, one
// message per violated rule.
type IdentityError struct {
	Reasons []string
}

func (e *IdentityError) Error() string {
	return "identity: " + strings.Join(e.Reasons, "; ")
}

func newIdentityError(reasons ...string) *IdentityError {
	return &IdentityError{Reasons: reasons}
}
