package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"
)

var ErrOrderClosed = errors.New("pedido já finalizado ou cancelado")

// TableService caches the open orders of every table, keyed by table
// number. Each operation sets loading/error on its own; there is no lock
// across remote calls, so concurrent writers race and the last one wins.
type TableService struct {
	Orders   *repository.OrderRepository
	Notifier Notifier

	mu      sync.Mutex
	byTable map[int][]entity.Order
	loading bool
	lastErr string
}

func NewTableService(orders *repository.OrderRepository, n Notifier) *TableService {
	return &TableService{
		Orders:   orders,
		Notifier: notifierOrNop(n),
		byTable:  make(map[int][]entity.Order),
	}
}

type TableState struct {
	TableNumber int            `json:"tableNumber"`
	Orders      []entity.Order `json:"orders"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error,omitempty"`
}

func (s *TableService) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *TableService) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}

// LoadOrders replaces the cached list of a table. On failure the previous
// list stays.
func (s *TableService) LoadOrders(ctx context.Context, tableNumber int) ([]entity.Order, error) {
	s.begin()
	orders, err := s.Orders.ListByTable(ctx, tableNumber)
	if err != nil {
		log.Printf("❌ load orders of table %d: %v", tableNumber, err)
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.byTable[tableNumber] = orders
	s.loading = false
	s.mu.Unlock()

	s.changed(tableNumber)
	return s.Snapshot(tableNumber), nil
}

// CreateOrder opens an order for the table; orderType defaults to "Mesa".
func (s *TableService) CreateOrder(ctx context.Context, tableNumber int, orderType string) (*entity.Order, error) {
	if orderType == "" {
		orderType = entity.TableOrderKindTable
	}
	n := tableNumber
	s.begin()
	order, err := s.Orders.CreateWithoutPayment(ctx, &entity.TableOrderRequest{TableNumber: &n, OrderType: orderType})
	if err != nil {
		log.Printf("❌ create order for table %d: %v", tableNumber, err)
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.byTable[tableNumber] = append(s.byTable[tableNumber], *order)
	s.loading = false
	s.mu.Unlock()

	s.changed(tableNumber)
	return order, nil
}

// AddItems appends items to an order. Orders cached as closed are refused
// without a call.
func (s *TableService) AddItems(ctx context.Context, orderID uint, items []entity.CreateOrderItem) (*entity.Order, error) {
	if cached, ok := s.find(orderID); ok && cached.Closed() {
		return nil, fmt.Errorf("pedido %d: %w", orderID, ErrOrderClosed)
	}

	s.begin()
	order, err := s.Orders.AddItems(ctx, orderID, items)
	if err != nil {
		log.Printf("❌ add items to order %d: %v", orderID, err)
		return nil, s.fail(err)
	}
	s.store(order)
	return order, nil
}

// ProcessPayment pays an order with whatever amount the caller gives.
func (s *TableService) ProcessPayment(ctx context.Context, orderID uint, method string, amount float64) (*entity.Order, error) {
	if cached, ok := s.find(orderID); ok && math.Abs(cached.TotalAmount-amount) > 0.005 {
		log.Printf("ℹ️ order %d: paying %.2f against cached total %.2f", orderID, amount, cached.TotalAmount)
	}

	s.begin()
	order, err := s.Orders.ProcessPayment(ctx, &entity.PaymentRequest{OrderID: orderID, PaymentMethod: method, Amount: amount})
	if err != nil {
		log.Printf("❌ process payment of order %d: %v", orderID, err)
		return nil, s.fail(err)
	}
	tn := s.store(order)
	s.Notifier.Notify(TopicTableOrderPaid, map[string]any{"tableNumber": tn, "order": order})
	return order, nil
}

// store replaces the cached copy of order, filing it under the table number
// the server returned. Orders that were never cached are left out. Returns
// the order's table number, or -1 when neither the cache nor the response
// names one.
func (s *TableService) store(order *entity.Order) int {
	s.mu.Lock()
	prev := -1
	pos := -1
	for tn, list := range s.byTable {
		for i, o := range list {
			if o.ID == order.ID {
				prev, pos = tn, i
				break
			}
		}
		if prev >= 0 {
			break
		}
	}

	target, ok := order.Table()
	if !ok {
		target = prev
	}
	switch {
	case prev < 0:
		// not cached: nothing to replace
	case prev == target:
		s.byTable[target][pos] = *order
	default:
		list := s.byTable[prev]
		s.byTable[prev] = append(list[:pos:pos], list[pos+1:]...)
		s.byTable[target] = append(s.byTable[target], *order)
	}
	s.loading = false
	s.mu.Unlock()

	if prev >= 0 {
		s.changed(prev)
		if target != prev {
			s.changed(target)
		}
	}
	return target
}

func (s *TableService) find(orderID uint) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.byTable {
		for _, o := range list {
			if o.ID == orderID {
				return o, true
			}
		}
	}
	return entity.Order{}, false
}

// Snapshot returns a copy of the cached orders of a table.
func (s *TableService) Snapshot(tableNumber int) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byTable[tableNumber]
	out := make([]entity.Order, len(list))
	copy(out, list)
	return out
}

func (s *TableService) State(tableNumber int) TableState {
	orders := s.Snapshot(tableNumber)
	s.mu.Lock()
	defer s.mu.Unlock()
	return TableState{TableNumber: tableNumber, Orders: orders, Loading: s.loading, Error: s.lastErr}
}

func (s *TableService) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *TableService) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *TableService) changed(tableNumber int) {
	s.Notifier.Notify(TopicTableOrders, map[string]any{"tableNumber": tableNumber, "orders": s.Snapshot(tableNumber)})
}
