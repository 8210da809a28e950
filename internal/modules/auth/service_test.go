package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techrent/internal/domain"
)

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAccounts) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAccounts) CheckPassword(u *domain.User, password string) bool {
	return m.Called(u, password).Bool(0)
}

func (m *mockAccounts) RolesFor(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) GenerateToken(userID, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func TestLogin_Success(t *testing.T) {
	accounts := new(mockAccounts)
	tokens := new(mockTokens)
	svc := NewService(accounts, tokens, time.Hour, zap.NewNop())
	ctx := context.Background()

	user := &domain.User{ID: "u-1", Email: "admin@techrent.com"}
	accounts.On("FindByEmail", ctx, "admin@techrent.com").Return(user, nil)
	accounts.On("CheckPassword", user, "Admin123!").Return(true)
	accounts.On("RolesFor", ctx, "u-1").Return([]string{domain.RoleAdmin}, nil)
	tokens.On("GenerateToken", "u-1", "admin@techrent.com", domain.RoleAdmin).Return("signed", nil)

	res, err := svc.Login(ctx, LoginRequest{Email: "admin@techrent.com", Password: "Admin123!"})
	require.NoError(t, err)
	assert.Equal(t, "signed", res.Token)
	assert.Equal(t, []string{domain.RoleAdmin}, res.Roles)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	accounts.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	accounts := new(mockAccounts)
	tokens := new(mockTokens)
	svc := NewService(accounts, tokens, time.Hour, zap.NewNop())
	ctx := context.Background()

	user := &domain.User{ID: "u-1"}
	accounts.On("FindByEmail", ctx, "a@b.c").Return(user, nil)
	accounts.On("CheckPassword", user, "nope").Return(false)

	_, err := svc.Login(ctx, LoginRequest{Email: "a@b.c", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	accounts := new(mockAccounts)
	svc := NewService(accounts, new(mockTokens), time.Hour, zap.NewNop())
	ctx := context.Background()

	accounts.On("FindByEmail", ctx, "ghost@b.c").Return(nil, ErrAccountNotFound)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	accounts := new(mockAccounts)
	svc := NewService(accounts, new(mockTokens), time.Hour, zap.NewNop())
	ctx := context.Background()

	boom := errors.New("db down")
	accounts.On("FindByEmail", ctx, "a@b.c").Return(nil, boom)

	_, err := svc.Login(ctx, LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, boom)
}
