package repository

import (
	"context"
	"fmt"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

type CategoryRepository struct{ API *APIClient }

func NewCategoryRepository(api *APIClient) *CategoryRepository {
	return &CategoryRepository{API: api}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := r.API.Get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Category{}
	}
	return out, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id uint) (*entity.Category, error) {
	var out entity.Category
	if err := r.API.Get(ctx, fmt.Sprintf("/categories/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryRepository) Create(ctx context.Context, in *entity.CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := r.API.Post(ctx, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, in *entity.CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := r.API.Put(ctx, fmt.Sprintf("/categories/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.API.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
