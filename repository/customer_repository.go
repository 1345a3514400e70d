package repository

import (
	"context"
	"fmt"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

type CustomerRepository struct{ API *APIClient }

func NewCustomerRepository(api *APIClient) *CustomerRepository {
	return &CustomerRepository{API: api}
}

// GET /Customers
func (r *CustomerRepository) List(ctx context.Context) ([]entity.CustomerRecord, error) {
	var out []entity.CustomerRecord
	if err := r.API.Get(ctx, "/Customers", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.CustomerRecord{}
	}
	return out, nil
}

// GET /Customers/:id
func (r *CustomerRepository) Get(ctx context.Context, id uint) (*entity.CustomerRecord, error) {
	var out entity.CustomerRecord
	if err := r.API.Get(ctx, fmt.Sprintf("/Customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /Customers
func (r *CustomerRepository) Create(ctx context.Context, in *entity.CustomerRecordInput) (*entity.CustomerRecord, error) {
	var out entity.CustomerRecord
	if err := r.API.Post(ctx, "/Customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PUT /Customers/:id
func (r *CustomerRepository) Update(ctx context.Context, id uint, in *entity.CustomerRecordInput) (*entity.CustomerRecord, error) {
	var out entity.CustomerRecord
	if err := r.API.Put(ctx, fmt.Sprintf("/Customers/%d", id), in, &out); err != nil {
		return nil, err
	}
	// some API builds answer 204 on update
	if out.ID == 0 {
		out.ID = id
	}
	return &out, nil
}

// DELETE /Customers/:id (soft delete on the API side)
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.API.Delete(ctx, fmt.Sprintf("/Customers/%d", id))
}
