package admin

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/modules/auth"
	"techrent/internal/repository"
)

type mockEquipment struct{ mock.Mock }

func (m *mockEquipment) List(ctx context.Context, f repository.EquipmentFilter, req listing.PageRequest) (listing.Page[domain.Equipment], error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).(listing.Page[domain.Equipment]), args.Error(1)
}

func (m *mockEquipment) ListAll(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *mockEquipment) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *mockEquipment) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEquipment) Create(ctx context.Context, e *domain.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEquipment) Update(ctx context.Context, e *domain.Equipment) (repository.UpdateStatus, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(repository.UpdateStatus), args.Error(1)
}

func (m *mockEquipment) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEquipment) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEquipment) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategories struct{ mock.Mock }

func (m *mockCategories) List(ctx context.Context, f repository.CategoryFilter, req listing.PageRequest) (listing.Page[domain.Category], error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).(listing.Page[domain.Category]), args.Error(1)
}

func (m *mockCategories) All(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategories) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategories) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategories) Create(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategories) Update(ctx context.Context, c *domain.Category) (repository.UpdateStatus, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(repository.UpdateStatus), args.Error(1)
}

func (m *mockCategories) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategories) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviews struct{ mock.Mock }

func (m *mockReviews) List(ctx context.Context, f repository.ReviewFilter, req listing.PageRequest) (listing.Page[domain.Review], error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).(listing.Page[domain.Review]), args.Error(1)
}

func (m *mockReviews) ListAll(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviews) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviews) Create(ctx context.Context, r *domain.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReviews) Update(ctx context.Context, r *domain.Review) (repository.UpdateStatus, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(repository.UpdateStatus), args.Error(1)
}

func (m *mockReviews) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReviews) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviews) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) List(ctx context.Context, f repository.UserFilter, req listing.PageRequest) (listing.Page[domain.User], error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).(listing.Page[domain.User]), args.Error(1)
}

func (m *mockUsers) ListAll(ctx context.Context, f repository.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookings) CountByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookings) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockIdentity struct{ mock.Mock }

func (m *mockIdentity) CreateAccount(ctx context.Context, acc auth.NewAccount) (*domain.User, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockIdentity) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockIdentity) UpdateProfile(ctx context.Context, p auth.ProfileUpdate) (repository.UpdateStatus, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(repository.UpdateStatus), args.Error(1)
}

func (m *mockIdentity) DeleteAccount(ctx context.Context, actorID, userID string) error {
	return m.Called(ctx, actorID, userID).Error(0)
}

func (m *mockIdentity) RolesFor(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mocks struct {
	equipment  *mockEquipment
	categories *mockCategories
	reviews    *mockReviews
	users      *mockUsers
	bookings   *mockBookings
	identity   *mockIdentity
}

func newTestService() (*Service, *mocks) {
	m := &mocks{
		equipment:  new(mockEquipment),
		categories: new(mockCategories),
		reviews:    new(mockReviews),
		users:      new(mockUsers),
		bookings:   new(mockBookings),
		identity:   new(mockIdentity),
	}
	svc := NewService(Repositories{
		Equipment:  m.equipment,
		Categories: m.categories,
		Reviews:    m.reviews,
		Users:      m.users,
		Bookings:   m.bookings,
	}, m.identity, listing.Limits{}, zap.NewNop())
	return svc, m
}
