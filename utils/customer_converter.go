package utils

import (
	"time"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

// NormalizeCustomer returns the copy of a screen customer that a PDV
// session keeps: addresses copied, person type and registration date
// defaulted.
func NormalizeCustomer(c entity.Customer) *entity.Customer {
	out := c
	if out.PersonType == "" {
		out.PersonType = entity.PersonIndividual
	}
	if out.RegisteredAt.IsZero() {
		out.RegisteredAt = entity.NewTimestamp(time.Now())
	}
	out.Addresses = make([]entity.Address, len(c.Addresses))
	copy(out.Addresses, c.Addresses)
	if c.BirthDate != nil {
		bd := *c.BirthDate
		out.BirthDate = &bd
	}
	return &out
}
