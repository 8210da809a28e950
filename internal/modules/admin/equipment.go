package admin

import (
	"context"

	"go.uber.org/zap"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/repository"
)

func (s *Service) ListEquipment(ctx context.Context, f repository.EquipmentFilter, page, pageSize int) (*EquipmentListing, error) {
	p, err := s.equipment.List(ctx, f, s.pageRequest(page, pageSize))
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	return &EquipmentListing{
		Page:          listing.Map(p, toEquipmentRow),
		Filters:       f,
		Categories:    categories,
		RatingOptions: domain.RatingBuckets,
	}, nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*EquipmentRow, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	row := toEquipmentRow(*e)
	return &row, nil
}

func (s *Service) checkCategory(ctx context.Context, id int64) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("category_id", "Category does not exist.")
	}
	return nil
}

func (in EquipmentInput) apply(e *domain.Equipment) {
	e.Name = in.Name
	e.CategoryID = in.CategoryID
	e.Description = in.Description
	e.PricePerDay = in.PricePerDay
	e.Deposit = in.Deposit
	e.ImageURL = in.ImageURL
	e.AvailableQuantity = in.AvailableQuantity
}

func (s *Service) CreateEquipment(ctx context.Context, in EquipmentInput) (*domain.Equipment, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	e := &domain.Equipment{}
	in.apply(e)
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	s.log.Info("equipment created", zap.Int64("equipment_id", e.ID))
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, req UpdateEquipmentRequest) (*EquipmentRow, error) {
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	e := &domain.Equipment{ID: id, Version: req.Version}
	req.apply(e)

	status, err := s.equipment.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}
	s.log.Info("equipment updated", zap.Int64("equipment_id", id), zap.Int64("version", e.Version))
	return s.GetEquipment(ctx, id)
}

// DeleteEquipment removes an item and its reviews. Items referenced by
// bookings stay.
func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	if _, err := s.equipment.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	n, err := s.bookings.CountByEquipment(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEquipmentInUse
	}
	if err := s.equipment.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.log.Info("equipment deleted", zap.Int64("equipment_id", id))
	return nil
}
