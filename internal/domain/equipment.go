package domain

// LowStockThreshold is the highest quantity still reported as low stock.
const LowStockThreshold = 5

type Equipment struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	Name              string `json:"name" gorm:"size:100;not null"`
	CategoryID        int64  `json:"category_id" gorm:"not null;index"`
	Description       string `json:"description,omitempty" gorm:"size:1000"`
	PricePerDay       int    `json:"price_per_day" gorm:"not null;check:price_per_day > 0"`
	Deposit           int    `json:"deposit" gorm:"not null;default:0;check:deposit >= 0"`
	ImageURL          string `json:"image_url,omitempty" gorm:"size:500"`
	AvailableQuantity int    `json:"available_quantity" gorm:"not null;default:0;check:available_quantity >= 0"`
	Version           int64  `json:"version" gorm:"not null;default:1"`

	Category *Category `json:"category,omitempty"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Bookings []Booking `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Equipment) TableName() string {
	return "equipment"
}

// AverageRating is the mean of the loaded reviews. ok is false when there are none.
func (e Equipment) AverageRating() (avg float64, ok bool) {
	if len(e.Reviews) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range e.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(e.Reviews)), true
}

func (e Equipment) InStock() bool {
	return e.AvailableQuantity > 0
}

func (e Equipment) LowStock() bool {
	return e.AvailableQuantity > 0 && e.AvailableQuantity <= LowStockThreshold
}
