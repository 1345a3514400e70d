package services

import (
	"sync"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/utils"
)

// SessionSettings is a point-in-time copy of a SessionConfig.
type SessionSettings struct {
	Customer      *entity.Customer `json:"selectedCustomer"`
	Table         *entity.Table    `json:"selectedTable"`
	OrderType     entity.OrderType `json:"orderType"`
	PaymentMethod string           `json:"paymentMethod"`
}

// SessionConfig carries the non-cart choices of a sale. Nothing here is
// validated; Finalize does that.
type SessionConfig struct {
	mu            sync.Mutex
	customer      *entity.Customer
	table         *entity.Table
	orderType     entity.OrderType
	paymentMethod string
}

func NewSessionConfig() *SessionConfig {
	return &SessionConfig{orderType: entity.OrderDineIn}
}

// SelectCustomer stores a normalized copy; nil means walk-in.
func (s *SessionConfig) SelectCustomer(c *entity.Customer) {
	var norm *entity.Customer
	if c != nil {
		norm = utils.NormalizeCustomer(*c)
	}
	s.mu.Lock()
	s.customer = norm
	s.mu.Unlock()
}

func (s *SessionConfig) SelectTable(t *entity.Table) {
	var cp *entity.Table
	if t != nil {
		v := *t
		cp = &v
	}
	s.mu.Lock()
	s.table = cp
	s.mu.Unlock()
}

// SelectOrderType drops the table for anything but dine-in. Going back to
// dine-in does not bring the old table back.
func (s *SessionConfig) SelectOrderType(t entity.OrderType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderType = t
	if t != entity.OrderDineIn {
		s.table = nil
	}
}

func (s *SessionConfig) SelectPaymentMethod(m string) {
	s.mu.Lock()
	s.paymentMethod = m
	s.mu.Unlock()
}

func (s *SessionConfig) Snapshot() SessionSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSettings{
		Customer:      s.customer,
		Table:         s.table,
		OrderType:     s.orderType,
		PaymentMethod: s.paymentMethod,
	}
}

// reset clears the per-sale choices; the order type is kept.
func (s *SessionConfig) reset() {
	s.mu.Lock()
	s.customer = nil
	s.table = nil
	s.paymentMethod = ""
	s.mu.Unlock()
}
