package domain

// Category groups equipment for browsing and filtering.
type Category struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:100;not null"`
	Description  string `json:"description,omitempty" gorm:"size:500"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0;index"`
	Version      int64  `json:"version" gorm:"not null;default:1"`

	Equipment []Equipment `json:"equipment,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Category) TableName() string {
	return "categories"
}
