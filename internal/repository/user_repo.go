package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"gorm.io/gorm"

	"techrent/internal/domain"
	"techrent/internal/listing"
)

// UserFilter holds the user listing filters. Role is not a column predicate:
// roles come from the identity provider and are matched after the SQL phase.
type UserFilter struct {
	Search         string    `json:"search_string"`
	Role           string    `json:"role"`
	EmailConfirmed null.Bool `json:"email_confirmed"`
	HasPhone       bool      `json:"has_phone"`
	NoPhone        bool      `json:"no_phone"`
}

var userOrder = []string{"users.email ASC", "users.id ASC"}

const hasPhoneSQL = "users.phone_number IS NOT NULL AND users.phone_number <> ''"

func (f UserFilter) Conditions() *listing.Conditions {
	c := &listing.Conditions{}
	if strings.TrimSpace(f.Search) != "" {
		c.Add(listing.ContainsFold(f.Search,
			"users.email",
			"users.user_name",
			"users.id",
			"COALESCE(users.phone_number, '')",
		))
	}
	if f.EmailConfirmed.Valid {
		c.Add(sq.Eq{"users.email_confirmed": f.EmailConfirmed.Bool})
	}
	if f.HasPhone {
		c.Add(sq.Expr(hasPhoneSQL))
	}
	if f.NoPhone {
		c.Add(sq.Expr("NOT (" + hasPhoneSQL + ")"))
	}
	return c
}

// UserRepository is the read side of user accounts. Writes go through the
// identity store.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) filtered(ctx context.Context, f UserFilter) (*gorm.DB, error) {
	return f.Conditions().Apply(r.db.WithContext(ctx).Model(&domain.User{}))
}

func (r *UserRepository) List(ctx context.Context, f UserFilter, req listing.PageRequest) (listing.Page[domain.User], error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return listing.Page[domain.User]{}, err
	}
	return listing.Query[domain.User](ctx, q, req, userOrder)
}

// ListAll returns every column match ordered by email. It is the candidate
// set for role filtering.
func (r *UserRepository) ListAll(ctx context.Context, f UserFilter) ([]domain.User, error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return listing.All[domain.User](ctx, q, userOrder)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}
