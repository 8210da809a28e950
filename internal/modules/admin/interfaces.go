package admin

import (
	"context"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/modules/auth"
	"techrent/internal/repository"
)

type EquipmentRepository interface {
	List(ctx context.Context, f repository.EquipmentFilter, req listing.PageRequest) (listing.Page[domain.Equipment], error)
	ListAll(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) (repository.UpdateStatus, error)
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context, f repository.CategoryFilter, req listing.PageRequest) (listing.Page[domain.Category], error)
	All(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) (repository.UpdateStatus, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type ReviewRepository interface {
	List(ctx context.Context, f repository.ReviewFilter, req listing.PageRequest) (listing.Page[domain.Review], error)
	ListAll(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) (repository.UpdateStatus, error)
	Delete(ctx context.Context, id int64) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository is the read side used for listings.
type UserRepository interface {
	List(ctx context.Context, f repository.UserFilter, req listing.PageRequest) (listing.Page[domain.User], error)
	ListAll(ctx context.Context, f repository.UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByEquipment(ctx context.Context, equipmentID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// IdentityProvider manages accounts and their roles.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, acc auth.NewAccount) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, p auth.ProfileUpdate) (repository.UpdateStatus, error)
	DeleteAccount(ctx context.Context, actorID, userID string) error
	RolesFor(ctx context.Context, userID string) ([]string, error)
}
