package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UpdateStatus reports how an optimistic update ended.
type UpdateStatus int

const (
	Updated UpdateStatus = iota
	UpdateNotFound
	UpdateConflict
)

func (s UpdateStatus) String() string {
	switch s {
	case Updated:
		return "updated"
	case UpdateNotFound:
		return "not_found"
	case UpdateConflict:
		return "conflict"
	default:
		return fmt.Sprintf("UpdateStatus(%d)", int(s))
	}
}

// UpdateVersioned writes values to the row with the given id only if its
// version still equals expected, and bumps the version. When nothing matched
// it checks whether the row still exists to tell NotFound from Conflict.
// model must be a zero value pointer of the target entity.
func UpdateVersioned(ctx context.Context, db *gorm.DB, model any, id any, expected int64, values map[string]any) (UpdateStatus, error) {
	set := make(map[string]any, len(values)+1)
	for k, v := range values {
		set[k] = v
	}
	set["version"] = gorm.Expr("version + ?", 1)

	res := db.WithContext(ctx).Model(model).
		Where("id = ? AND version = ?", id, expected).
		Updates(set)
	if res.Error != nil {
		return UpdateConflict, fmt.Errorf("versioned update: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return Updated, nil
	}

	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return UpdateConflict, fmt.Errorf("versioned update lookup: %w", err)
	}
	if n == 0 {
		return UpdateNotFound, nil
	}
	return UpdateConflict, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
