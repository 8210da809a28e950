package admin

import (
	"context"
	"time"

	"go.uber.org/zap"

	"techrent/internal/listing"
)

// Repositories groups the stores the back-office reads and writes.
type Repositories struct {
	Equipment  EquipmentRepository
	Categories CategoryRepository
	Reviews    ReviewRepository
	Users      UserRepository
	Bookings   BookingRepository
}

type Service struct {
	equipment  EquipmentRepository
	categories CategoryRepository
	reviews    ReviewRepository
	users      UserRepository
	bookings   BookingRepository
	identity   IdentityProvider
	limits     listing.Limits
	log        *zap.Logger
	now        func() time.Time
}

func NewService(repos Repositories, identity IdentityProvider, limits listing.Limits, log *zap.Logger) *Service {
	return &Service{
		equipment:  repos.Equipment,
		categories: repos.Categories,
		reviews:    repos.Reviews,
		users:      repos.Users,
		bookings:   repos.Bookings,
		identity:   identity,
		limits:     limits,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) pageRequest(page, pageSize int) listing.PageRequest {
	return s.limits.Request(page, pageSize)
}

// Stats returns row counts for the dashboard.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.Equipment, err = s.equipment.Count(ctx); err != nil {
		return nil, err
	}
	if st.Categories, err = s.categories.Count(ctx); err != nil {
		return nil, err
	}
	if st.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if st.Reviews, err = s.reviews.Count(ctx); err != nil {
		return nil, err
	}
	if st.Bookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}
