package admin

import (
	"context"

	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/repository"
)

func toCategoryRow(c domain.Category) CategoryRow {
	return CategoryRow{Category: c, EquipmentCount: len(c.Equipment)}
}

func (s *Service) ListCategories(ctx context.Context, f repository.CategoryFilter, page, pageSize int) (*CategoryListing, error) {
	p, err := s.categories.List(ctx, f, s.pageRequest(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &CategoryListing{Page: listing.Map(p, toCategoryRow), Filters: f}, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*CategoryRow, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	row := toCategoryRow(*c)
	return &row, nil
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	c := &domain.Category{
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.Int64("category_id", c.ID))
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryRow, error) {
	c := &domain.Category{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Version:      req.Version,
	}
	status, err := s.categories.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}
	s.log.Info("category updated", zap.Int64("category_id", id), zap.Int64("version", c.Version))
	return s.GetCategory(ctx, id)
}

// DeleteCategory refuses while any equipment still belongs to the category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	n, err := s.equipment.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.log.Info("category deleted", zap.Int64("category_id", id))
	return nil
}
