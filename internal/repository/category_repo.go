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

type CategoryFilter struct {
	Search          string   `json:"search_string"`
	MinDisplayOrder null.Int `json:"min_display_order"`
	MaxDisplayOrder null.Int `json:"max_display_order"`
	HasEquipment    bool     `json:"has_equipment"`
	EmptyCategories bool     `json:"empty_categories"`
}

var categoryOrder = []string{"categories.display_order ASC", "categories.name ASC", "categories.id ASC"}

const categoryEquipmentSQL = "SELECT 1 FROM equipment WHERE equipment.category_id = categories.id"

func (f CategoryFilter) Conditions() *listing.Conditions {
	c := &listing.Conditions{}
	if strings.TrimSpace(f.Search) != "" {
		c.Add(listing.ContainsFold(f.Search,
			"categories.name",
			"CAST(categories.id AS TEXT)",
			"COALESCE(categories.description, '')",
		))
	}
	if f.MinDisplayOrder.Valid {
		c.Add(sq.GtOrEq{"categories.display_order": f.MinDisplayOrder.Int})
	}
	if f.MaxDisplayOrder.Valid {
		c.Add(sq.LtOrEq{"categories.display_order": f.MaxDisplayOrder.Int})
	}
	if f.HasEquipment {
		c.Add(listing.Exists(categoryEquipmentSQL))
	}
	if f.EmptyCategories {
		c.Add(listing.NotExists(categoryEquipmentSQL))
	}
	return c
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, f CategoryFilter, req listing.PageRequest) (listing.Page[domain.Category], error) {
	q, err := f.Conditions().Apply(r.db.WithContext(ctx).Model(&domain.Category{}))
	if err != nil {
		return listing.Page[domain.Category]{}, err
	}
	return listing.Query[domain.Category](ctx, q, req, categoryOrder, "Equipment")
}

// All returns every category in display order, without equipment.
func (r *CategoryRepository) All(ctx context.Context) ([]domain.Category, error) {
	return listing.All[domain.Category](ctx, r.db.Model(&domain.Category{}), categoryOrder)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).
		Preload("Equipment", func(db *gorm.DB) *gorm.DB {
			return db.Order("equipment.id ASC")
		}).
		First(&c, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return r.db.WithContext(ctx).Omit("Equipment").Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (UpdateStatus, error) {
	status, err := UpdateVersioned(ctx, r.db, &domain.Category{}, c.ID, c.Version, map[string]any{
		"name":          c.Name,
		"description":   c.Description,
		"display_order": c.DisplayOrder,
	})
	if status == Updated {
		c.Version++
	}
	return status, err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&n).Error
	return n, err
}
