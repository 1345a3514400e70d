package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

type DeliveryRepository struct{ API *APIClient }

func NewDeliveryRepository(api *APIClient) *DeliveryRepository {
	return &DeliveryRepository{API: api}
}

func (r *DeliveryRepository) List(ctx context.Context, f entity.DeliveryFilter) ([]entity.DeliveryOrder, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.DeliveryPerson != "" {
		q.Set("deliveryPerson", f.DeliveryPerson)
	}
	return r.list(ctx, "/deliveries", q)
}

// GET /deliveries/active
func (r *DeliveryRepository) Active(ctx context.Context) ([]entity.DeliveryOrder, error) {
	return r.list(ctx, "/deliveries/active", nil)
}

func (r *DeliveryRepository) list(ctx context.Context, path string, q url.Values) ([]entity.DeliveryOrder, error) {
	var out []entity.DeliveryOrder
	if err := r.API.Get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.DeliveryOrder{}
	}
	return out, nil
}

func (r *DeliveryRepository) Get(ctx context.Context, id uint) (*entity.DeliveryOrder, error) {
	var out entity.DeliveryOrder
	if err := r.API.Get(ctx, fmt.Sprintf("/deliveries/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /deliveries/:id/status
func (r *DeliveryRepository) UpdateStatus(ctx context.Context, id uint, in *entity.UpdateDeliveryStatusRequest) (*entity.DeliveryOrder, error) {
	var out entity.DeliveryOrder
	if err := r.API.Patch(ctx, fmt.Sprintf("/deliveries/%d/status", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /deliveries/:id/assign
func (r *DeliveryRepository) Assign(ctx context.Context, id uint, person string) (*entity.DeliveryOrder, error) {
	var out entity.DeliveryOrder
	in := entity.AssignDeliveryPersonRequest{DeliveryPerson: person}
	if err := r.API.Patch(ctx, fmt.Sprintf("/deliveries/%d/assign", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /deliveries/:id/estimated-time
func (r *DeliveryRepository) SetEstimatedTime(ctx context.Context, id uint, in *entity.EstimatedTimeRequest) (*entity.DeliveryOrder, error) {
	var out entity.DeliveryOrder
	if err := r.API.Patch(ctx, fmt.Sprintf("/deliveries/%d/estimated-time", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DeliveryRepository) Stats(ctx context.Context) (*entity.DeliveryStats, error) {
	var out entity.DeliveryStats
	if err := r.API.Get(ctx, "/deliveries/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
