package review

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/modules/catalog"
	"techrent/internal/repository"
)

type ReviewStore interface {
	List(ctx context.Context, f repository.ReviewFilter, req listing.PageRequest) (listing.Page[domain.Review], error)
	ExistsForUser(ctx context.Context, userID string, equipmentID int64) (bool, error)
	Create(ctx context.Context, r *domain.Review) error
}

type EquipmentGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service lets signed-in customers rate equipment, one review per item.
type Service struct {
	reviews   ReviewStore
	equipment EquipmentGate
	limits    listing.Limits
	log       *zap.Logger
	now       func() time.Time
}

func NewService(reviews ReviewStore, equipment EquipmentGate, limits listing.Limits, log *zap.Logger) *Service {
	return &Service{
		reviews:   reviews,
		equipment: equipment,
		limits:    limits,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateReviewRequest) (*domain.Review, error) {
	if userID == "" || req.EquipmentID <= 0 || req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, ErrInvalidRequest
	}

	ok, err := s.equipment.Exists(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	dup, err := s.reviews.ExistsForUser(ctx, userID, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrConflict
	}

	rv := &domain.Review{
		UserID:      userID,
		EquipmentID: req.EquipmentID,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		CreatedAt:   s.now(),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	s.log.Info("review posted", zap.Int64("review_id", rv.ID), zap.Int64("equipment_id", rv.EquipmentID), zap.String("user_id", userID))
	return rv, nil
}

// ByEquipment pages the reviews of one item, newest first.
func (s *Service) ByEquipment(ctx context.Context, equipmentID int64, page, pageSize int) (listing.Page[catalog.PublicReview], error) {
	if equipmentID <= 0 {
		return listing.Page[catalog.PublicReview]{}, ErrInvalidRequest
	}
	ok, err := s.equipment.Exists(ctx, equipmentID)
	if err != nil {
		return listing.Page[catalog.PublicReview]{}, err
	}
	if !ok {
		return listing.Page[catalog.PublicReview]{}, ErrNotFound
	}

	req := s.limits.Request(page, pageSize)
	p, err := s.reviews.List(ctx, repository.ReviewFilter{EquipmentID: null.Int64From(equipmentID)}, req)
	if err != nil {
		return listing.Page[catalog.PublicReview]{}, err
	}
	return listing.Map(p, catalog.ToPublicReview), nil
}
