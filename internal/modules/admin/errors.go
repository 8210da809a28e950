package admin

import (
	"errors"
	"sort"
	"strings"

	"techrent/internal/repository"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("the record was modified or deleted by another user")
	ErrCategoryInUse  = errors.New("cannot delete category that has equipment assigned to it")
	ErrEquipmentInUse = errors.New("cannot delete equipment that has bookings")
	ErrUserInUse      = errors.New("cannot delete a user who has bookings or reviews")
	ErrSelfDelete     = errors.New("you cannot delete your own account")
)

// ValidationError carries field level messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func statusError(status repository.UpdateStatus) error {
	switch status {
	case repository.UpdateNotFound:
		return ErrNotFound
	case repository.UpdateConflict:
		return ErrConflict
	default:
		return nil
	}
}
