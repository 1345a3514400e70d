package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

var (
	ErrUnknownStatus     = errors.New("status de pedido desconhecido")
	ErrInvalidTransition = errors.New("transição de status inválida")
)

var knownStatuses = map[string]bool{
	entity.OrderOpen:            true,
	entity.OrderInProgress:      true,
	entity.OrderAwaitingPayment: true,
	entity.OrderClosed:          true,
	entity.OrderCancelled:       true,
}

// CanTransition reports whether an order may move from one status to
// another. Closed and cancelled orders are final; everything else is left
// to the API.
func CanTransition(from, to string) bool {
	if !knownStatuses[to] {
		return false
	}
	if from == to {
		return true
	}
	return from != entity.OrderClosed && from != entity.OrderCancelled
}

// UpdateStatus reads the order and refuses moves out of a final status
// before asking the API.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Order, error) {
	if !knownStatuses[status] {
		return nil, fmt.Errorf("%q: %w", status, ErrUnknownStatus)
	}
	cur, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(cur.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", cur.Status, status, ErrInvalidTransition)
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	cur.Status = status
	return cur, nil
}
