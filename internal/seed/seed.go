// Package seed loads the demo catalog and the two demo accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"techrent/internal/domain"
	"techrent/internal/modules/auth"
)

const (
	AdminEmail    = "admin@techrent.com"
	AdminPassword = "Admin123!"
	UserEmail     = "user@example.com"
	UserPassword  = "User123!"
)

var categories = []domain.Category{
	{Name: "Бетономешалки", Description: "Бетономешалки для строительных работ", DisplayOrder: 1},
	{Name: "Электроинструмент", Description: "Перфораторы, шуруповерты и другой электроинструмент", DisplayOrder: 2},
	{Name: "Леса и опалубка", Description: "Строительные леса и опалубка", DisplayOrder: 3},
	{Name: "Компрессоры", Description: "Воздушные компрессоры", DisplayOrder: 4},
}

type item struct {
	category string
	domain.Equipment
}

var equipment = []item{
	{"Бетономешалки", domain.Equipment{
		Name:              "Бетономешалка 150л",
		Description:       "Профессиональная бетономешалка объемом 150 литров. Идеально подходит для строительных работ.",
		PricePerDay:       1500,
		Deposit:           5000,
		ImageURL:          "/images/betonomeshalka.jpg",
		AvailableQuantity: 3,
	}},
	{"Электроинструмент", domain.Equipment{
		Name:              "Перфоратор Bosch",
		Description:       "Мощный перфоратор с функцией отбойника. В комплекте набор буров.",
		PricePerDay:       800,
		Deposit:           3000,
		ImageURL:          "/images/perforator.jpg",
		AvailableQuantity: 5,
	}},
	{"Леса и опалубка", domain.Equipment{
		Name:              "Строительные леса",
		Description:       "Комплект строительных лесов высотой 5м. Включает все необходимые элементы.",
		PricePerDay:       2500,
		Deposit:           10000,
		ImageURL:          "/images/lesa.jpg",
		AvailableQuantity: 2,
	}},
	{"Электроинструмент", domain.Equipment{
		Name:              "Шуруповерт Makita",
		Description:       "Аккумуляторный шуруповерт с двумя аккумуляторами в комплекте.",
		PricePerDay:       600,
		Deposit:           2500,
		ImageURL:          "/images/shurupovert.jpg",
		AvailableQuantity: 4,
	}},
	{"Компрессоры", domain.Equipment{
		Name:              "Компрессор воздушный",
		Description:       "Воздушный компрессор для покраски и пневмоинструмента.",
		PricePerDay:       1200,
		Deposit:           4000,
		ImageURL:          "/images/kompressor.jpg",
		AvailableQuantity: 2,
	}},
}

// Run creates whatever demo data is missing. Accounts are matched by email,
// the catalog is only loaded into an empty equipment table.
func Run(ctx context.Context, db *gorm.DB, identity *auth.IdentityStore, log *zap.Logger, now time.Time) error {
	if _, err := ensureAccount(ctx, identity, log, AdminEmail, AdminPassword, domain.RoleAdmin); err != nil {
		return err
	}
	user, err := ensureAccount(ctx, identity, log, UserEmail, UserPassword, domain.RoleUser)
	if err != nil {
		return err
	}

	var n int64
	if err := db.WithContext(ctx).Model(&domain.Equipment{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Info("equipment already present, catalog seed skipped", zap.Int64("equipment", n))
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]int64, len(categories))
		for _, c := range categories {
			c := c
			c.Version = 1
			if err := tx.Where(domain.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", c.Name, err)
			}
			ids[c.Name] = c.ID
		}

		created := make([]domain.Equipment, 0, len(equipment))
		for _, it := range equipment {
			e := it.Equipment
			e.CategoryID = ids[it.category]
			e.Version = 1
			if err := tx.Omit("Category", "Reviews", "Bookings").Create(&e).Error; err != nil {
				return fmt.Errorf("seed equipment %q: %w", e.Name, err)
			}
			created = append(created, e)
		}

		reviews := []domain.Review{
			{UserID: user.ID, EquipmentID: created[0].ID, Rating: 5, Comment: "Отличная бетономешалка! Работала без нареканий весь день.", CreatedAt: now.AddDate(0, 0, -5)},
			{UserID: user.ID, EquipmentID: created[1].ID, Rating: 4, Comment: "Хороший перфоратор, но немного тяжеловат.", CreatedAt: now.AddDate(0, 0, -3)},
		}
		for i := range reviews {
			reviews[i].Version = 1
			if err := tx.Omit("User", "Equipment").Create(&reviews[i]).Error; err != nil {
				return fmt.Errorf("seed review: %w", err)
			}
		}

		log.Info("catalog seeded",
			zap.Int("categories", len(categories)),
			zap.Int("equipment", len(created)),
			zap.Int("reviews", len(reviews)),
		)
		return nil
	})
}

func ensureAccount(ctx context.Context, identity *auth.IdentityStore, log *zap.Logger, email, password, role string) (*domain.User, error) {
	u, err := identity.FindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, auth.ErrAccountNotFound) {
		return nil, err
	}

	u, err = identity.CreateAccount(ctx, auth.NewAccount{
		Email:          email,
		UserName:       email,
		Password:       password,
		EmailConfirmed: true,
		Role:           role,
	})
	if err != nil {
		return nil, fmt.Errorf("seed account %s: %w", email, err)
	}
	log.Info("account created", zap.String("email", email), zap.String("role", role))
	return u, nil
}
