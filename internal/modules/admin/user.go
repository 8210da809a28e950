package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/modules/auth"
	"techrent/internal/repository"
)

func (s *Service) withRoles(ctx context.Context, u domain.User) (UserRow, error) {
	roles, err := s.identity.RolesFor(ctx, u.ID)
	if err != nil {
		return UserRow{}, err
	}
	if roles == nil {
		roles = []string{}
	}
	return UserRow{User: u, Roles: roles}, nil
}

// ListUsers filters on columns in SQL first. A role filter is then applied
// to that candidate set with one role lookup per candidate, and the page is
// cut from the survivors.
func (s *Service) ListUsers(ctx context.Context, f repository.UserFilter, page, pageSize int) (*UserListing, error) {
	req := s.pageRequest(page, pageSize)
	out := &UserListing{Filters: f, Roles: domain.Roles}

	if f.Role == "" {
		p, err := s.users.List(ctx, f, req)
		if err != nil {
			return nil, err
		}
		rows := make([]UserRow, 0, len(p.Items))
		for _, u := range p.Items {
			row, err := s.withRoles(ctx, u)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		out.Page = listing.NewPage(rows, req, p.TotalItems)
		return out, nil
	}

	candidates, err := s.users.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}
	matched := make([]UserRow, 0, len(candidates))
	for _, u := range candidates {
		row, err := s.withRoles(ctx, u)
		if err != nil {
			return nil, err
		}
		for _, r := range row.Roles {
			if r == f.Role {
				matched = append(matched, row)
				break
			}
		}
	}
	out.Page = listing.Slice(matched, req)
	return out, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*UserRow, error) {
	u, err := s.identity.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row, err := s.withRoles(ctx, *u)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*UserRow, error) {
	if req.Password != req.ConfirmPassword {
		return nil, invalid("confirm_password", "Passwords do not match.")
	}
	u, err := s.identity.CreateAccount(ctx, auth.NewAccount{
		Email:                req.Email,
		UserName:             req.UserName,
		Password:             req.Password,
		PhoneNumber:          req.PhoneNumber,
		EmailConfirmed:       req.EmailConfirmed,
		PhoneNumberConfirmed: req.PhoneNumberConfirmed,
		Role:                 req.Role,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("user_id", u.ID), zap.String("role", req.Role))
	return &UserRow{User: *u, Roles: []string{req.Role}}, nil
}

// UpdateUser saves the profile flags and replaces the role set with the
// single requested role. Both changes commit together or not at all.
func (s *Service) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserRow, error) {
	status, err := s.identity.UpdateProfile(ctx, auth.ProfileUpdate{
		ID:                   id,
		Version:              req.Version,
		PhoneNumber:          req.PhoneNumber,
		EmailConfirmed:       req.EmailConfirmed,
		PhoneNumberConfirmed: req.PhoneNumberConfirmed,
		TwoFactorEnabled:     req.TwoFactorEnabled,
		Roles:                []string{req.Role},
	})
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}
	s.log.Info("user updated", zap.String("user_id", id), zap.String("role", req.Role))
	return s.GetUser(ctx, id)
}

// DeleteUser removes an account. Actors cannot delete themselves, and users
// with bookings or reviews are kept.
func (s *Service) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}
	if _, err := s.identity.FindByID(ctx, id); err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return ErrNotFound
		}
		return err
	}

	bookings, err := s.bookings.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	reviews, err := s.reviews.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if bookings > 0 || reviews > 0 {
		return ErrUserInUse
	}

	if err := s.identity.DeleteAccount(ctx, actorID, id); err != nil {
		switch {
		case errors.Is(err, auth.ErrSelfDelete):
			return ErrSelfDelete
		case errors.Is(err, auth.ErrAccountNotFound):
			return ErrNotFound
		}
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id), zap.String("actor_id", actorID))
	return nil
}
