package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	UserID      string        `json:"user_id" gorm:"size:36;not null;index"`
	EquipmentID int64         `json:"equipment_id" gorm:"not null;index"`
	StartDate   time.Time     `json:"start_date" gorm:"not null"`
	EndDate     time.Time     `json:"end_date" gorm:"not null"`
	TotalPrice  int           `json:"total_price" gorm:"not null;default:0"`
	DepositPaid int           `json:"deposit_paid" gorm:"not null;default:0"`
	Fine        int           `json:"fine" gorm:"not null;default:0"`
	Status      BookingStatus `json:"status" gorm:"size:16;not null;default:Confirmed"`
	CreatedAt   time.Time     `json:"created_at"`

	User      *User      `json:"user,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
	Delivery  *Delivery  `json:"delivery,omitempty" gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Booking) TableName() string {
	return "bookings"
}
