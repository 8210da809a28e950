package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"size:36;not null;index"`
	EquipmentID int64     `json:"equipment_id" gorm:"not null;index"`
	Rating      int       `json:"rating" gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment     string    `json:"comment,omitempty" gorm:"size:1000"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index"`
	Version     int64     `json:"version" gorm:"not null;default:1"`

	User      *User      `json:"user,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
