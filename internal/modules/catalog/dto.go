package catalog

import (
	"time"

	"github.com/aarondl/null/v8"

	"techrent/internal/domain"
)

// EquipmentCard is the public summary of an item. Stock numbers are reduced
// to availability flags.
type EquipmentCard struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	CategoryID    int64        `json:"category_id"`
	PricePerDay   int          `json:"price_per_day"`
	Deposit       int          `json:"deposit"`
	ImageURL      string       `json:"image_url,omitempty"`
	InStock       bool         `json:"in_stock"`
	LowStock      bool         `json:"low_stock"`
	AverageRating null.Float64 `json:"average_rating"`
	ReviewCount   int          `json:"review_count"`
}

type PublicReview struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type EquipmentDetails struct {
	EquipmentCard
	Description string         `json:"description,omitempty"`
	Reviews     []PublicReview `json:"reviews"`
}

func toCard(e domain.Equipment) EquipmentCard {
	card := EquipmentCard{
		ID:          e.ID,
		Name:        e.Name,
		CategoryID:  e.CategoryID,
		PricePerDay: e.PricePerDay,
		Deposit:     e.Deposit,
		ImageURL:    e.ImageURL,
		InStock:     e.InStock(),
		LowStock:    e.LowStock(),
		ReviewCount: len(e.Reviews),
	}
	if e.Category != nil {
		card.Category = e.Category.Name
	}
	if avg, ok := e.AverageRating(); ok {
		card.AverageRating = null.Float64From(avg)
	}
	return card
}

func toDetails(e domain.Equipment) *EquipmentDetails {
	d := &EquipmentDetails{
		EquipmentCard: toCard(e),
		Description:   e.Description,
		Reviews:       make([]PublicReview, 0, len(e.Reviews)),
	}
	for _, r := range e.Reviews {
		d.Reviews = append(d.Reviews, ToPublicReview(r))
	}
	return d
}

// ToPublicReview hides everything about the author but the user name.
func ToPublicReview(r domain.Review) PublicReview {
	author := "Customer"
	if r.User != nil {
		author = r.User.UserName
	}
	return PublicReview{
		Rating:    r.Rating,
		Comment:   r.Comment,
		Author:    author,
		CreatedAt: r.CreatedAt,
	}
}
