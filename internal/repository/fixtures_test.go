package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"techrent/internal/database"
	"techrent/internal/domain"
	"techrent/internal/listing"
)

// fixture is a small catalog:
//
//	1 Mixer 150L          Mixers       1500  qty 3   ratings 5,3
//	2 Bosch Hammer Drill  Power Tools   800  qty 5   ratings 5,5
//	3 Scaffold Set        Scaffolding  2500  qty 0
//	4 Makita Driver       Power Tools   600  qty 12  rating 2
//	5 Air Compressor      Mixers       1200  qty 2
type fixture struct {
	db         *gorm.DB
	categories []domain.Category
	equipment  []domain.Equipment
	alice, bob *domain.User
	reviews    []domain.Review
}

func day(d, h, m int) time.Time {
	return time.Date(2026, time.March, d, h, m, 0, 0, time.UTC)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{db: setupDB(t)}

	f.categories = []domain.Category{
		{Name: "Mixers", Description: "Concrete mixers", DisplayOrder: 1, Version: 1},
		{Name: "Power Tools", DisplayOrder: 2, Version: 1},
		{Name: "Scaffolding", Description: "Frames and planks", DisplayOrder: 3, Version: 1},
		{Name: "Empty", DisplayOrder: 4, Version: 1},
	}
	for i := range f.categories {
		require.NoError(t, f.db.Omit("Equipment").Create(&f.categories[i]).Error)
	}

	cat := func(i int) int64 { return f.categories[i].ID }
	f.equipment = []domain.Equipment{
		{Name: "Mixer 150L", CategoryID: cat(0), PricePerDay: 1500, Deposit: 5000, AvailableQuantity: 3},
		{Name: "Bosch Hammer Drill", CategoryID: cat(1), PricePerDay: 800, Deposit: 3000, AvailableQuantity: 5},
		{Name: "Scaffold Set", CategoryID: cat(2), PricePerDay: 2500, Deposit: 10000, AvailableQuantity: 0},
		{Name: "Makita Driver", CategoryID: cat(1), PricePerDay: 600, Deposit: 2500, AvailableQuantity: 12},
		{Name: "Air Compressor", CategoryID: cat(0), PricePerDay: 1200, Deposit: 4000, AvailableQuantity: 2},
	}
	repo := NewEquipmentRepository(f.db)
	for i := range f.equipment {
		require.NoError(t, repo.Create(context.Background(), &f.equipment[i]))
	}

	f.alice = &domain.User{Email: "alice@example.com", UserName: "alice@example.com", PasswordHash: "x",
		PhoneNumber: "+77000000000", EmailConfirmed: true, Version: 1}
	f.bob = &domain.User{Email: "bob@example.com", UserName: "bob@example.com", PasswordHash: "x", Version: 1}
	require.NoError(t, f.db.Omit("Roles", "Bookings", "Reviews").Create(f.alice).Error)
	require.NoError(t, f.db.Omit("Roles", "Bookings", "Reviews").Create(f.bob).Error)

	eq := func(i int) int64 { return f.equipment[i].ID }
	f.reviews = []domain.Review{
		{UserID: f.alice.ID, EquipmentID: eq(0), Rating: 5, Comment: "Great mixer", CreatedAt: day(5, 10, 0)},
		{UserID: f.bob.ID, EquipmentID: eq(0), Rating: 3, CreatedAt: day(7, 23, 30)},
		{UserID: f.alice.ID, EquipmentID: eq(1), Rating: 5, Comment: "Strong drill", CreatedAt: day(8, 8, 0)},
		{UserID: f.bob.ID, EquipmentID: eq(1), Rating: 5, CreatedAt: day(9, 12, 0)},
		{UserID: f.alice.ID, EquipmentID: eq(3), Rating: 2, Comment: "Too weak", CreatedAt: day(10, 9, 0)},
	}
	reviews := NewReviewRepository(f.db)
	for i := range f.reviews {
		require.NoError(t, reviews.Create(context.Background(), &f.reviews[i]))
	}
	return f
}

var firstPage = listing.PageRequest{Page: 1, PageSize: 100}

func equipmentNames(items []domain.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}

func reviewIDs(items []domain.Review) []int64 {
	out := make([]int64, len(items))
	for i, r := range items {
		out[i] = r.ID
	}
	return out
}
