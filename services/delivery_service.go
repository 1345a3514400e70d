package services

import (
	"context"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"
)

type DeliveryService struct {
	Repo *repository.DeliveryRepository
}

func NewDeliveryService(r *repository.DeliveryRepository) *DeliveryService {
	return &DeliveryService{Repo: r}
}

func (s *DeliveryService) List(ctx context.Context, f entity.DeliveryFilter) ([]entity.DeliveryOrder, error) {
	return s.Repo.List(ctx, f)
}

func (s *DeliveryService) Active(ctx context.Context) ([]entity.DeliveryOrder, error) {
	return s.Repo.Active(ctx)
}

func (s *DeliveryService) Get(ctx context.Context, id uint) (*entity.DeliveryOrder, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DeliveryService) UpdateStatus(ctx context.Context, id uint, in *entity.UpdateDeliveryStatusRequest) (*entity.DeliveryOrder, error) {
	return s.Repo.UpdateStatus(ctx, id, in)
}

func (s *DeliveryService) Assign(ctx context.Context, id uint, person string) (*entity.DeliveryOrder, error) {
	return s.Repo.Assign(ctx, id, person)
}

func (s *DeliveryService) SetEstimatedTime(ctx context.Context, id uint, in *entity.EstimatedTimeRequest) (*entity.DeliveryOrder, error) {
	return s.Repo.SetEstimatedTime(ctx, id, in)
}

func (s *DeliveryService) Stats(ctx context.Context) (*entity.DeliveryStats, error) {
	return s.Repo.Stats(ctx)
}
