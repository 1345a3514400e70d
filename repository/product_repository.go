package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

type ProductRepository struct{ API *APIClient }

func NewProductRepository(api *APIClient) *ProductRepository {
	return &ProductRepository{API: api}
}

// GET /products?includeInactive=
func (r *ProductRepository) List(ctx context.Context, includeInactive bool) ([]entity.Product, error) {
	q := url.Values{}
	q.Set("includeInactive", strconv.FormatBool(includeInactive))
	var out []entity.Product
	if err := r.API.Get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Product{}
	}
	return out, nil
}

// GET /products/:id
func (r *ProductRepository) Get(ctx context.Context, id uint) (*entity.Product, error) {
	var out entity.Product
	if err := r.API.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepository) Create(ctx context.Context, in *entity.ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := r.API.Post(ctx, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, in *entity.ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := r.API.Put(ctx, fmt.Sprintf("/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /products/deactivate/:id
func (r *ProductRepository) Deactivate(ctx context.Context, id uint, reason string) error {
	return r.API.Patch(ctx, fmt.Sprintf("/products/deactivate/%d", id), entity.DeactivateRequest{Reason: reason}, nil)
}

// PATCH /products/activate/:id
func (r *ProductRepository) Activate(ctx context.Context, id uint) error {
	return r.API.Patch(ctx, fmt.Sprintf("/products/activate/%d", id), nil, nil)
}
