package repository

import (
	"context"

	"gorm.io/gorm"

	"techrent/internal/domain"
)

// BookingRepository exposes the booking counts that guard deletes and feed
// the dashboard. Reservation flows are not part of the back-office.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create stores a booking and its delivery, if any.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Omit("User", "Equipment").Create(b).Error
}

func (r *BookingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *BookingRepository) CountByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("equipment_id = ?", equipmentID).Count(&n).Error
	return n, err
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&n).Error
	return n, err
}
