package catalog

import (
	"context"
	"errors"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/repository"
)

var ErrNotFound = errors.New("not found")

// Service is the public, read-only view of the rental catalog.
type Service struct {
	equipmentRepo *repository.EquipmentRepository
	categoryRepo  *repository.CategoryRepository
	limits        listing.Limits
}

func NewService(
	equipmentRepo *repository.EquipmentRepository,
	categoryRepo *repository.CategoryRepository,
	limits listing.Limits,
) *Service {
	return &Service{equipmentRepo, categoryRepo, limits}
}

func (s *Service) ListEquipment(ctx context.Context, f repository.EquipmentFilter, page, pageSize int) (listing.Page[EquipmentCard], error) {
	p, err := s.equipmentRepo.List(ctx, f, s.limits.Request(page, pageSize))
	if err != nil {
		return listing.Page[EquipmentCard]{}, err
	}
	return listing.Map(p, toCard), nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*EquipmentDetails, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDetails(*e), nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.All(ctx)
}
