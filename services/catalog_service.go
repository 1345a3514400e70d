package services

import (
	"context"
	"time"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/eapache/go-resiliency/retrier"
)

// transientOnly retries network failures and 5xx answers; a 4xx will not
// change on retry.
type transientOnly struct{}

func (transientOnly) Classify(err error) retrier.Action {
	if err == nil {
		return retrier.Succeed
	}
	if ae, ok := repository.AsAPIError(err); ok && ae.Status >= 400 && ae.Status < 500 {
		return retrier.Fail
	}
	return retrier.Retry
}

// CatalogService serves products and categories. Reads retry with
// exponential backoff; writes go out once.
type CatalogService struct {
	Products   *repository.ProductRepository
	Categories *repository.CategoryRepository
	retry      *retrier.Retrier
}

// NewCatalogService retries reads up to attempts times in total, waiting
// backoff, 2*backoff, ... between them.
func NewCatalogService(p *repository.ProductRepository, c *repository.CategoryRepository, attempts int, backoff time.Duration) *CatalogService {
	if attempts < 1 {
		attempts = 1
	}
	return &CatalogService{
		Products:   p,
		Categories: c,
		retry:      retrier.New(retrier.ExponentialBackoff(attempts-1, backoff), transientOnly{}),
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, includeInactive bool) ([]entity.Product, error) {
	var out []entity.Product
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Products.List(ctx, includeInactive)
		return err
	})
	return out, err
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	var out *entity.Product
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Products.Get(ctx, id)
		return err
	})
	return out, err
}

func (s *CatalogService) CreateProduct(ctx context.Context, in *entity.ProductInput) (*entity.Product, error) {
	return s.Products.Create(ctx, in)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, in *entity.ProductInput) (*entity.Product, error) {
	return s.Products.Update(ctx, id, in)
}

func (s *CatalogService) DeactivateProduct(ctx context.Context, id uint, reason string) error {
	return s.Products.Deactivate(ctx, id, reason)
}

func (s *CatalogService) ActivateProduct(ctx context.Context, id uint) error {
	return s.Products.Activate(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Categories.List(ctx)
		return err
	})
	return out, err
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	var out *entity.Category
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Categories.Get(ctx, id)
		return err
	})
	return out, err
}

// CreateCategory defaults isActive to true.
func (s *CatalogService) CreateCategory(ctx context.Context, in *entity.CategoryInput) (*entity.Category, error) {
	if in.IsActive == nil {
		t := true
		in.IsActive = &t
	}
	return s.Categories.Create(ctx, in)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, in *entity.CategoryInput) (*entity.Category, error) {
	return s.Categories.Update(ctx, id, in)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.Categories.Delete(ctx, id)
}
