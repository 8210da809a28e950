package admin

import (
	"github.com/aarondl/null/v8"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/repository"
)

type EquipmentInput struct {
	Name              string `json:"name" validate:"required,max=100"`
	CategoryID        int64  `json:"category_id" validate:"required,gt=0"`
	Description       string `json:"description" validate:"max=1000"`
	PricePerDay       int    `json:"price_per_day" validate:"gt=0"`
	Deposit           int    `json:"deposit" validate:"gte=0"`
	ImageURL          string `json:"image_url" validate:"max=500"`
	AvailableQuantity int    `json:"available_quantity" validate:"gte=0"`
}

type UpdateEquipmentRequest struct {
	EquipmentInput
	Version int64 `json:"version" validate:"gt=0"`
}

type CategoryInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Description  string `json:"description" validate:"max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	CategoryInput
	Version int64 `json:"version" validate:"gt=0"`
}

// CreateUserRequest creates an account. UserName defaults to Email.
type CreateUserRequest struct {
	Email                string `json:"email" validate:"required,email,max=256"`
	UserName             string `json:"user_name" validate:"max=256"`
	Password             string `json:"password" validate:"required"`
	ConfirmPassword      string `json:"confirm_password" validate:"required"`
	PhoneNumber          string `json:"phone_number" validate:"max=32"`
	EmailConfirmed       bool   `json:"email_confirmed"`
	PhoneNumberConfirmed bool   `json:"phone_number_confirmed"`
	Role                 string `json:"role" validate:"required,oneof=Admin User"`
}

type UpdateUserRequest struct {
	PhoneNumber          string `json:"phone_number" validate:"max=32"`
	EmailConfirmed       bool   `json:"email_confirmed"`
	PhoneNumberConfirmed bool   `json:"phone_number_confirmed"`
	TwoFactorEnabled     bool   `json:"two_factor_enabled"`
	Role                 string `json:"role" validate:"required,oneof=Admin User"`
	Version              int64  `json:"version" validate:"gt=0"`
}

type CreateReviewRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	EquipmentID int64  `json:"equipment_id" validate:"required,gt=0"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
	Version int64  `json:"version" validate:"gt=0"`
}

// EquipmentRow is an equipment item with its rating summary.
type EquipmentRow struct {
	domain.Equipment
	AverageRating null.Float64 `json:"average_rating"`
	ReviewCount   int          `json:"review_count"`
}

func toEquipmentRow(e domain.Equipment) EquipmentRow {
	row := EquipmentRow{Equipment: e, ReviewCount: len(e.Reviews)}
	if avg, ok := e.AverageRating(); ok {
		row.AverageRating = null.Float64From(avg)
	}
	return row
}

type EquipmentListing struct {
	listing.Page[EquipmentRow]
	Filters       repository.EquipmentFilter `json:"filters"`
	Categories    []domain.Category          `json:"categories"`
	RatingOptions []domain.RatingBucket      `json:"rating_options"`
}

type CategoryRow struct {
	domain.Category
	EquipmentCount int `json:"equipment_count"`
}

type CategoryListing struct {
	listing.Page[CategoryRow]
	Filters repository.CategoryFilter `json:"filters"`
}

type UserRow struct {
	domain.User
	Roles []string `json:"roles"`
}

type UserListing struct {
	listing.Page[UserRow]
	Filters repository.UserFilter `json:"filters"`
	Roles   []string              `json:"roles"`
}

type ReviewListing struct {
	listing.Page[domain.Review]
	Filters repository.ReviewFilter `json:"filters"`
}

type Stats struct {
	Equipment  int64 `json:"equipment"`
	Categories int64 `json:"categories"`
	Users      int64 `json:"users"`
	Reviews    int64 `json:"reviews"`
	Bookings   int64 `json:"bookings"`
}
