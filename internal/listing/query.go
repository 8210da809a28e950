package listing

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Query counts every row matched by q, then loads the requested page in the
// given order. q must already carry its model and filters.
func Query[T any](ctx context.Context, q *gorm.DB, req PageRequest, order []string, preloads ...string) (Page[T], error) {
	base := q.WithContext(ctx).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return Page[T]{}, fmt.Errorf("count: %w", err)
	}

	items := make([]T, 0, req.PageSize)
	if total == 0 || int64(req.Offset()) >= total {
		return NewPage(items, req, total), nil
	}

	find := base
	for _, o := range order {
		find = find.Order(o)
	}
	for _, p := range preloads {
		find = find.Preload(p)
	}
	if err := find.Offset(req.Offset()).Limit(req.PageSize).Find(&items).Error; err != nil {
		return Page[T]{}, fmt.Errorf("find page: %w", err)
	}

	return NewPage(items, req, total), nil
}

// All loads every matching row in order, without paging.
func All[T any](ctx context.Context, q *gorm.DB, order []string, preloads ...string) ([]T, error) {
	find := q.WithContext(ctx).Session(&gorm.Session{})
	for _, o := range order {
		find = find.Order(o)
	}
	for _, p := range preloads {
		find = find.Preload(p)
	}
	var items []T
	if err := find.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return items, nil
}
