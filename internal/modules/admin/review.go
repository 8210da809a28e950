package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/repository"
)

func (s *Service) ListReviews(ctx context.Context, f repository.ReviewFilter, page, pageSize int) (*ReviewListing, error) {
	p, err := s.reviews.List(ctx, f, s.pageRequest(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &ReviewListing{Page: p, Filters: f}, nil
}

func (s *Service) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return r, nil
}

func (s *Service) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	fields := map[string]string{}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		fields["user_id"] = "User does not exist."
	}
	ok, err := s.equipment.Exists(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		fields["equipment_id"] = "Equipment does not exist."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	r := &domain.Review{
		UserID:      req.UserID,
		EquipmentID: req.EquipmentID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		CreatedAt:   s.now(),
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info("review created", zap.Int64("review_id", r.ID), zap.Int64("equipment_id", r.EquipmentID))
	return r, nil
}

// UpdateReview changes rating and comment only.
func (s *Service) UpdateReview(ctx context.Context, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	r := &domain.Review{ID: id, Rating: req.Rating, Comment: req.Comment, Version: req.Version}
	status, err := s.reviews.Update(ctx, r)
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}
	s.log.Info("review updated", zap.Int64("review_id", id), zap.Int64("version", r.Version))
	return s.GetReview(ctx, id)
}

func (s *Service) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.log.Info("review deleted", zap.Int64("review_id", id))
	return nil
}
