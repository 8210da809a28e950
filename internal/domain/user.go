package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Roles lists every role an account can hold, in display order.
var Roles = []string{RoleAdmin, RoleUser}

func IsKnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID                   string    `json:"id" gorm:"size:36;primaryKey"`
	Email                string    `json:"email" gorm:"size:256;not null;uniqueIndex"`
	UserName             string    `json:"user_name" gorm:"size:256;not null;uniqueIndex"`
	PasswordHash         string    `json:"-" gorm:"not null"`
	PhoneNumber          string    `json:"phone_number,omitempty" gorm:"size:32"`
	EmailConfirmed       bool      `json:"email_confirmed" gorm:"not null;default:false"`
	PhoneNumberConfirmed bool      `json:"phone_number_confirmed" gorm:"not null;default:false"`
	TwoFactorEnabled     bool      `json:"two_factor_enabled" gorm:"not null;default:false"`
	Version              int64     `json:"version" gorm:"not null;default:1"`
	CreatedAt            time.Time `json:"created_at"`

	Roles    []UserRole `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Bookings []Booking  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Reviews  []Review   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRole assigns one role to one account.
type UserRole struct {
	UserID string `json:"user_id" gorm:"size:36;primaryKey"`
	Role   string `json:"role" gorm:"size:32;primaryKey"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
