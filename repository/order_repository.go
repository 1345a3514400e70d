package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

type OrderRepository struct {
	API *APIClient
}

func NewOrderRepository(api *APIClient) *OrderRepository {
	return &OrderRepository{API: api}
}

// ---------------- Checkout ----------------

// POST /orders/create
func (r *OrderRepository) Create(ctx context.Context, in *entity.CreateOrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := r.API.Post(ctx, "/orders/create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /orders/create-delivery
func (r *OrderRepository) CreateDelivery(ctx context.Context, in *entity.CreateDeliveryOrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := r.API.Post(ctx, "/orders/create-delivery", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- Listing / admin ----------------

// GET /orders → orders plus the X-Total-Count header (falls back to len)
func (r *OrderRepository) List(ctx context.Context, f entity.OrderFilter) (*entity.OrderPage, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CustomerID != nil {
		q.Set("customerId", strconv.FormatUint(uint64(*f.CustomerID), 10))
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(f.PageNumber))
	}
	if f.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(f.PageSize))
	}

	var orders []entity.Order
	h, err := r.API.Do(ctx, http.MethodGet, "/orders", q, nil, &orders)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	total := len(orders)
	if v := h.Get("X-Total-Count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			total = n
		}
	}
	return &entity.OrderPage{Orders: orders, TotalCount: total}, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*entity.Order, error) {
	var out entity.Order
	if err := r.API.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PUT /orders/:id/status
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.API.Put(ctx, fmt.Sprintf("/orders/%d/status", id), entity.UpdateOrderStatusRequest{Status: status}, nil)
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.API.Delete(ctx, fmt.Sprintf("/orders/%d", id))
}

// GET /orders/stats
func (r *OrderRepository) Stats(ctx context.Context) (*entity.DeliveryStats, error) {
	var out entity.DeliveryStats
	if err := r.API.Get(ctx, "/orders/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- Table orders ----------------

// POST /orders/create-without-payment
func (r *OrderRepository) CreateWithoutPayment(ctx context.Context, in *entity.TableOrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := r.API.Post(ctx, "/orders/create-without-payment", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /orders/:id/add-items
func (r *OrderRepository) AddItems(ctx context.Context, orderID uint, items []entity.CreateOrderItem) (*entity.Order, error) {
	in := entity.AddItemsRequest{OrderID: orderID, Items: items}
	var out entity.Order
	if err := r.API.Post(ctx, fmt.Sprintf("/orders/%d/add-items", orderID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /orders/:id/process-payment
func (r *OrderRepository) ProcessPayment(ctx context.Context, in *entity.PaymentRequest) (*entity.Order, error) {
	var out entity.Order
	if err := r.API.Post(ctx, fmt.Sprintf("/orders/%d/process-payment", in.OrderID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /orders/table/:n
func (r *OrderRepository) ListByTable(ctx context.Context, tableNumber int) ([]entity.Order, error) {
	var out []entity.Order
	if err := r.API.Get(ctx, fmt.Sprintf("/orders/table/%d", tableNumber), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.Order{}
	}
	return out, nil
}
