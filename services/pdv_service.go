package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart            = errors.New("Carrinho vazio")
	ErrMissingPaymentMethod = errors.New("Selecione uma forma de pagamento")
	ErrSessionNotFound      = errors.New("sessão não encontrada")
	ErrInvalidOrderType     = errors.New("tipo de venda inválido")
)

// PDVSession is one point-of-sale screen: a cart, its settings and the
// last checkout error.
type PDVSession struct {
	ID        string
	CreatedAt time.Time
	Cart      *Cart
	Config    *SessionConfig

	orders   *repository.OrderRepository
	journal  *JournalService
	notifier Notifier

	mu      sync.Mutex
	loading bool
	lastErr string
}

type SessionView struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Items     []entity.CartLine `json:"items"`
	Total     float64           `json:"total"`
	SessionSettings
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func (s *PDVSession) View() SessionView {
	s.mu.Lock()
	loading, msg := s.loading, s.lastErr
	s.mu.Unlock()
	return SessionView{
		ID:              s.ID,
		CreatedAt:       s.CreatedAt,
		Items:           s.Cart.Lines(),
		Total:           s.Cart.Total(),
		SessionSettings: s.Config.Snapshot(),
		Loading:         loading,
		Error:           msg,
	}
}

func (s *PDVSession) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *PDVSession) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *PDVSession) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.lastErr = ""
	}
	s.mu.Unlock()
}

func (s *PDVSession) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}

// Finalize submits the sale as exactly one create call. Validation failures
// make no call and leave the session untouched. On success the cart and
// the per-sale settings are reset.
func (s *PDVSession) Finalize(ctx context.Context) (*entity.Order, error) {
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	cfg := s.Config.Snapshot()
	if cfg.PaymentMethod == "" {
		return nil, ErrMissingPaymentMethod
	}

	items := make([]entity.CreateOrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.CreateOrderItem{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	var customerID *uint
	if cfg.Customer != nil {
		id := cfg.Customer.ID
		customerID = &id
	}

	s.setLoading(true)
	var (
		order *entity.Order
		err   error
	)
	if cfg.OrderType == entity.OrderDelivery {
		info := entity.DeliveryInfo{DeliveryType: entity.OrderDelivery.DeliveryType()}
		if cfg.Customer != nil {
			info.CustomerPhone = cfg.Customer.Phone
			if a, ok := cfg.Customer.PrimaryAddress(); ok {
				info.DeliveryAddress = a.Street
			}
		}
		order, err = s.orders.CreateDelivery(ctx, &entity.CreateDeliveryOrderRequest{
			CustomerID:    customerID,
			PaymentMethod: cfg.PaymentMethod,
			DeliveryInfo:  info,
			Items:         items,
		})
	} else {
		order, err = s.orders.Create(ctx, &entity.CreateOrderRequest{
			CustomerID:    customerID,
			PaymentMethod: cfg.PaymentMethod,
			DeliveryType:  cfg.OrderType.DeliveryType(),
			Items:         items,
		})
	}
	if err != nil {
		log.Printf("❌ finalize session %s: %v", s.ID, err)
		return nil, s.fail(err)
	}

	s.Cart.Clear()
	s.Config.reset()
	s.setLoading(false)

	s.record(ctx, order, cfg, lines)
	s.notifier.Notify(TopicOrderFinalized, finalizedEvent(s.ID, order))
	return order, nil
}

func finalizedEvent(sessionID string, order *entity.Order) map[string]any {
	return map[string]any{"sessionId": sessionID, "order": order}
}

func (s *PDVSession) record(ctx context.Context, order *entity.Order, cfg SessionSettings, lines []entity.CartLine) {
	if s.journal == nil {
		return
	}
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	rec := &entity.SaleRecord{
		SessionID:     s.ID,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		OrderType:     string(cfg.OrderType),
		PaymentMethod: cfg.PaymentMethod,
		ItemCount:     count,
		Total:         order.TotalAmount,
		Operator:      repository.OperatorFrom(ctx),
	}
	if cfg.Customer != nil {
		id := cfg.Customer.ID
		rec.CustomerID = &id
	}
	if err := s.journal.Record(rec); err != nil {
		log.Printf("⚠️ journal write failed for order %d: %v", order.ID, err)
	}
}

// PDVService owns the open PDV sessions.
type PDVService struct {
	Orders   *repository.OrderRepository
	Journal  *JournalService
	Notifier Notifier

	mu       sync.RWMutex
	sessions map[string]*PDVSession
}

func NewPDVService(orders *repository.OrderRepository, journal *JournalService, n Notifier) *PDVService {
	return &PDVService{
		Orders:   orders,
		Journal:  journal,
		Notifier: notifierOrNop(n),
		sessions: make(map[string]*PDVSession),
	}
}

func (s *PDVService) Open() *PDVSession {
	sess := &PDVSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Cart:      &Cart{},
		Config:    NewSessionConfig(),
		orders:    s.Orders,
		journal:   s.Journal,
		notifier:  s.Notifier,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *PDVService) Get(id string) (*PDVSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *PDVService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// List returns the open sessions, oldest first.
func (s *PDVService) List() []SessionView {
	s.mu.RLock()
	all := make([]*PDVSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	out := make([]SessionView, 0, len(all))
	for _, sess := range all {
		out = append(out, sess.View())
	}
	return out
}

// Changed pushes the session's current view to listeners.
func (s *PDVService) Changed(sess *PDVSession) {
	s.Notifier.Notify(TopicSessionUpdated, sess.View())
}
