package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"gorm.io/gorm"

	"techrent/internal/domain"
	"techrent/internal/listing"
)

type ReviewFilter struct {
	Search      string     `json:"search_string"`
	EquipmentID null.Int64 `json:"equipment_id"`
	Rating      null.Int   `json:"rating"`
	DateFrom    null.Time  `json:"date_from"`
	DateTo      null.Time  `json:"date_to"`
	HasComment  bool       `json:"has_comment"`
	NoComment   bool       `json:"no_comment"`
}

var reviewOrder = []string{"reviews.created_at DESC", "reviews.id DESC"}

const hasCommentSQL = "reviews.comment IS NOT NULL AND reviews.comment <> ''"

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (f ReviewFilter) Conditions() *listing.Conditions {
	c := &listing.Conditions{}

	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := listing.LikePattern(term)
		c.Add(sq.Or{
			listing.Like("CAST(reviews.id AS TEXT)", pattern),
			listing.Like("COALESCE(reviews.comment, '')", pattern),
			listing.Exists(
				"SELECT 1 FROM users WHERE users.id = reviews.user_id AND "+listing.LikeClause("users.email"),
				pattern,
			),
			listing.Exists(
				"SELECT 1 FROM equipment WHERE equipment.id = reviews.equipment_id AND "+listing.LikeClause("equipment.name"),
				pattern,
			),
		})
	}
	if f.EquipmentID.Valid && f.EquipmentID.Int64 > 0 {
		c.Add(sq.Eq{"reviews.equipment_id": f.EquipmentID.Int64})
	}
	if f.Rating.Valid {
		c.Add(sq.Eq{"reviews.rating": f.Rating.Int})
	}
	if f.DateFrom.Valid {
		c.Add(sq.GtOrEq{"reviews.created_at": startOfDay(f.DateFrom.Time)})
	}
	if f.DateTo.Valid {
		// the whole dateTo day is included
		c.Add(sq.Lt{"reviews.created_at": startOfDay(f.DateTo.Time).AddDate(0, 0, 1)})
	}
	if f.HasComment {
		c.Add(sq.Expr(hasCommentSQL))
	}
	if f.NoComment {
		c.Add(sq.Expr("NOT (" + hasCommentSQL + ")"))
	}
	return c
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) filtered(ctx context.Context, f ReviewFilter) (*gorm.DB, error) {
	return f.Conditions().Apply(r.db.WithContext(ctx).Model(&domain.Review{}))
}

func (r *ReviewRepository) List(ctx context.Context, f ReviewFilter, req listing.PageRequest) (listing.Page[domain.Review], error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return listing.Page[domain.Review]{}, err
	}
	return listing.Query[domain.Review](ctx, q, req, reviewOrder, "User", "Equipment")
}

func (r *ReviewRepository) ListAll(ctx context.Context, f ReviewFilter) ([]domain.Review, error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return listing.All[domain.Review](ctx, q, reviewOrder, "User", "Equipment")
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Equipment").
		First(&rv, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.Version == 0 {
		rv.Version = 1
	}
	return r.db.WithContext(ctx).Omit("User", "Equipment").Create(rv).Error
}

// Update saves rating and comment. Author, equipment and creation time are
// never rewritten.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (UpdateStatus, error) {
	status, err := UpdateVersioned(ctx, r.db, &domain.Review{}, rv.ID, rv.Version, map[string]any{
		"rating":  rv.Rating,
		"comment": rv.Comment,
	})
	if status == Updated {
		rv.Version++
	}
	return status, err
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) ExistsForUser(ctx context.Context, userID string, equipmentID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		Count(&n).Error
	return n > 0, err
}

func (r *ReviewRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&n).Error
	return n, err
}
