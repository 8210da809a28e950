package domain

import "time"

const DeliveryPending = "Pending"

type Delivery struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	BookingID    int64     `json:"booking_id" gorm:"not null;uniqueIndex"`
	Address      string    `json:"address" gorm:"size:300;not null"`
	Cost         int       `json:"cost" gorm:"not null;default:0"`
	DeliveryDate time.Time `json:"delivery_date"`
	Status       string    `json:"status" gorm:"size:32;not null;default:Pending"`
}

func (Delivery) TableName() string {
	return "deliveries"
}
