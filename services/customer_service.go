package services

import (
	"context"
	"strings"
	"sync"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"
	"github.com/AndersonMairnck/frontFynanceo/utils"
)

const (
	CustomerCreated     = "created"
	CustomerUpdated     = "updated"
	CustomerDeactivated = "deactivated"
	CustomerActivated   = "activated"
)

type CustomerEvent struct {
	Action   string           `json:"action"`
	ID       uint             `json:"id"`
	Customer *entity.Customer `json:"customer,omitempty"`
}

// CustomerService is the single owner of customer data on the terminal.
// Screens read through it and subscribe to its changes instead of keeping
// their own lists.
type CustomerService struct {
	Repo     *repository.CustomerRepository
	Notifier Notifier

	mu     sync.RWMutex
	cache  []entity.Customer
	subs   map[int]func(CustomerEvent)
	nextID int
}

func NewCustomerService(r *repository.CustomerRepository, n Notifier) *CustomerService {
	return &CustomerService{Repo: r, Notifier: notifierOrNop(n), subs: map[int]func(CustomerEvent){}}
}

// Subscribe registers fn for every change; the returned func removes it.
func (s *CustomerService) Subscribe(fn func(CustomerEvent)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *CustomerService) publish(ev CustomerEvent) {
	s.mu.RLock()
	fns := make([]func(CustomerEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
	s.Notifier.Notify(TopicCustomerChanged, ev)
}

const (
	DefaultCustomerPageSize = 10
	MaxCustomerPageSize     = 100
)

// List fetches every customer, then filters by name/email (case
// insensitive) and pages locally. page starts at 1; pageSize is capped at
// MaxCustomerPageSize.
func (s *CustomerService) List(ctx context.Context, page, pageSize int, search string) (*entity.PaginatedResponse[entity.Customer], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultCustomerPageSize
	}
	if pageSize > MaxCustomerPageSize {
		pageSize = MaxCustomerPageSize
	}
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	all := utils.CustomersFromRecords(records)

	s.mu.Lock()
	s.cache = all
	s.mu.Unlock()

	filtered := all
	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		filtered = make([]entity.Customer, 0, len(all))
		for _, c := range all {
			if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
				filtered = append(filtered, c)
			}
		}
	}

	start := len(filtered)
	if page-1 < len(filtered)/pageSize+1 {
		start = min((page-1)*pageSize, len(filtered))
	}
	end := min(start+pageSize, len(filtered))
	items := make([]entity.Customer, end-start)
	copy(items, filtered[start:end])

	return &entity.PaginatedResponse[entity.Customer]{
		Items:      items,
		TotalCount: len(filtered),
		PageNumber: page,
		PageSize:   pageSize,
		TotalPages: (len(filtered) + pageSize - 1) / pageSize,
	}, nil
}

// Cached returns the last fetched list without a remote call.
func (s *CustomerService) Cached() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, len(s.cache))
	copy(out, s.cache)
	return out
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*entity.Customer, error) {
	rec, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c := utils.CustomerFromRecord(*rec)
	return &c, nil
}

func (s *CustomerService) Create(ctx context.Context, f entity.CustomerForm) (*entity.Customer, error) {
	in := utils.RecordInputFromForm(f, nil)
	rec, err := s.Repo.Create(ctx, &in)
	if err != nil {
		return nil, err
	}
	c := utils.CustomerFromRecord(*rec)
	s.upsert(c)
	s.publish(CustomerEvent{Action: CustomerCreated, ID: c.ID, Customer: &c})
	return &c, nil
}

// Update reads the stored record first so fields the form does not carry
// survive the PUT.
func (s *CustomerService) Update(ctx context.Context, id uint, f entity.CustomerForm) (*entity.Customer, error) {
	c, err := s.update(ctx, id, f)
	if err != nil {
		return nil, err
	}
	s.publish(CustomerEvent{Action: CustomerUpdated, ID: id, Customer: c})
	return c, nil
}

func (s *CustomerService) update(ctx context.Context, id uint, f entity.CustomerForm) (*entity.Customer, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in := utils.RecordInputFromForm(f, existing)
	rec, err := s.Repo.Update(ctx, id, &in)
	if err != nil {
		return nil, err
	}
	if rec.Name == "" {
		// empty body: echo what was sent
		rec = &entity.CustomerRecord{
			ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, CreatedAt: existing.CreatedAt,
			IsActive: in.IsActive, TaxID: in.TaxID, PersonType: in.PersonType, Street: in.Street,
			District: in.District, City: in.City, State: in.State, PostalCode: in.PostalCode, Complement: in.Complement,
		}
	}
	c := utils.CustomerFromRecord(*rec)
	s.upsert(c)
	return &c, nil
}

// Deactivate is the API's soft delete.
func (s *CustomerService) Deactivate(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i].Active = false
		}
	}
	s.mu.Unlock()
	s.publish(CustomerEvent{Action: CustomerDeactivated, ID: id})
	return nil
}

// Activate re-submits the customer with active=true.
func (s *CustomerService) Activate(ctx context.Context, id uint) (*entity.Customer, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f := entity.CustomerForm{
		Name:       cur.Name,
		Email:      cur.Email,
		Phone:      cur.Phone,
		TaxID:      cur.TaxID,
		PersonType: cur.PersonType,
		BirthDate:  cur.BirthDate,
		Active:     true,
		Notes:      cur.Notes,
		Addresses:  cur.Addresses,
	}
	c, err := s.update(ctx, id, f)
	if err != nil {
		return nil, err
	}
	s.publish(CustomerEvent{Action: CustomerActivated, ID: id, Customer: c})
	return c, nil
}

func (s *CustomerService) upsert(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].ID == c.ID {
			s.cache[i] = c
			return
		}
	}
	s.cache = append(s.cache, c)
}
