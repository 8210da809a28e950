package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"gorm.io/gorm"

	"techrent/internal/domain"
	"techrent/internal/listing"
)

// EquipmentFilter holds the optional equipment listing filters. Zero values
// and invalid nulls are not applied.
type EquipmentFilter struct {
	Search         string       `json:"search_string"`
	CategoryID     null.Int64   `json:"category_id"`
	MinPrice       null.Float64 `json:"min_price"`
	MaxPrice       null.Float64 `json:"max_price"`
	AvailableOnly  bool         `json:"available_only"`
	LowStockOnly   bool         `json:"low_stock_only"`
	OutOfStockOnly bool         `json:"out_of_stock_only"`
	Rating         string       `json:"rating"`
}

var equipmentOrder = []string{"equipment.id ASC"}

const avgRatingSQL = "(SELECT AVG(reviews.rating) FROM reviews WHERE reviews.equipment_id = equipment.id)"

func (f EquipmentFilter) Conditions() *listing.Conditions {
	c := &listing.Conditions{}

	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := listing.LikePattern(term)
		c.Add(sq.Or{
			listing.Like("equipment.name", pattern),
			listing.Like("CAST(equipment.id AS TEXT)", pattern),
			listing.Exists(
				"SELECT 1 FROM categories WHERE categories.id = equipment.category_id AND "+listing.LikeClause("categories.name"),
				pattern,
			),
		})
	}
	if f.CategoryID.Valid && f.CategoryID.Int64 > 0 {
		c.Add(sq.Eq{"equipment.category_id": f.CategoryID.Int64})
	}
	if f.MinPrice.Valid {
		c.Add(sq.GtOrEq{"equipment.price_per_day": f.MinPrice.Float64})
	}
	if f.MaxPrice.Valid {
		c.Add(sq.LtOrEq{"equipment.price_per_day": f.MaxPrice.Float64})
	}
	if f.AvailableOnly {
		c.Add(sq.Gt{"equipment.available_quantity": 0})
	}
	if f.LowStockOnly {
		c.Add(sq.And{
			sq.Gt{"equipment.available_quantity": 0},
			sq.LtOrEq{"equipment.available_quantity": domain.LowStockThreshold},
		})
	}
	if f.OutOfStockOnly {
		c.Add(sq.Eq{"equipment.available_quantity": 0})
	}
	if threshold, ok := domain.RatingBucket(f.Rating).Threshold(); ok {
		// AVG over no rows is NULL, so unrated equipment never matches.
		c.Add(sq.Expr(avgRatingSQL+" >= ?", threshold))
	}

	return c
}

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) filtered(ctx context.Context, f EquipmentFilter) (*gorm.DB, error) {
	return f.Conditions().Apply(r.db.WithContext(ctx).Model(&domain.Equipment{}))
}

// List returns one page of equipment ordered by id, with category and reviews loaded.
func (r *EquipmentRepository) List(ctx context.Context, f EquipmentFilter, req listing.PageRequest) (listing.Page[domain.Equipment], error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return listing.Page[domain.Equipment]{}, err
	}
	return listing.Query[domain.Equipment](ctx, q, req, equipmentOrder, "Category", "Reviews")
}

// ListAll returns every match in listing order.
func (r *EquipmentRepository) ListAll(ctx context.Context, f EquipmentFilter) ([]domain.Equipment, error) {
	q, err := r.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return listing.All[domain.Equipment](ctx, q, equipmentOrder, "Category", "Reviews")
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User").
		First(&e, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.Version == 0 {
		e.Version = 1
	}
	return r.db.WithContext(ctx).Omit("Category", "Reviews", "Bookings").Create(e).Error
}

// Update saves the editable fields if e.Version is still current.
func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) (UpdateStatus, error) {
	status, err := UpdateVersioned(ctx, r.db, &domain.Equipment{}, e.ID, e.Version, map[string]any{
		"name":               e.Name,
		"category_id":        e.CategoryID,
		"description":        e.Description,
		"price_per_day":      e.PricePerDay,
		"deposit":            e.Deposit,
		"image_url":          e.ImageURL,
		"available_quantity": e.AvailableQuantity,
	})
	if status == Updated {
		e.Version++
	}
	return status, err
}

// Delete removes the equipment together with its reviews.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		res := tx.Delete(&domain.Equipment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *EquipmentRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Count(&n).Error
	return n, err
}
