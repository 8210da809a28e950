package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	accounts AccountReader
	tokens   TokenIssuer
	tokenTTL time.Duration
	log      *zap.Logger
}

func NewService(accounts AccountReader, tokens TokenIssuer, tokenTTL time.Duration, log *zap.Logger) *Service {
	return &Service{accounts: accounts, tokens: tokens, tokenTTL: tokenTTL, log: log}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.accounts.CheckPassword(user, req.Password) {
		s.log.Info("login rejected", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	roles, err := s.accounts.RolesFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, PrimaryRole(roles))
	if err != nil {
		return nil, err
	}

	s.log.Info("login", zap.String("user_id", user.ID))
	return &LoginResult{
		User:      user,
		Roles:     roles,
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenTTL).UTC(),
	}, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*MeResponse, error) {
	user, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.accounts.RolesFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &MeResponse{User: user, Roles: roles}, nil
}
