package services

import (
	"context"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"
)

// OrderService backs the order history screens.
type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

func (s *OrderService) List(ctx context.Context, f entity.OrderFilter) (*entity.OrderPage, error) {
	return s.Repo.List(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	return s.Repo.Get(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Delete(ctx, id)
}

func (s *OrderService) Stats(ctx context.Context) (*entity.DeliveryStats, error) {
	return s.Repo.Stats(ctx)
}
