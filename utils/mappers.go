package utils

import (
	"strings"

	"github.com/AndersonMairnck/frontFynanceo/entity"
)

// SplitStreet splits the API's "street, number" field on its last comma.
// Without a comma the whole value is the street.
func SplitStreet(full string) (street, number string) {
	if full == "" {
		return "", ""
	}
	i := strings.LastIndex(full, ",")
	if i < 0 {
		return full, ""
	}
	return strings.TrimSpace(full[:i]), strings.TrimSpace(full[i+1:])
}

// JoinStreet is the inverse of SplitStreet.
func JoinStreet(street, number string) string {
	return strings.TrimSpace(street + ", " + number)
}

func CustomerFromRecord(r entity.CustomerRecord) entity.Customer {
	street, number := SplitStreet(r.Street)
	personType := r.PersonType
	if personType == "" {
		personType = entity.PersonIndividual
	}
	return entity.Customer{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		TaxID:        r.TaxID,
		PersonType:   personType,
		RegisteredAt: r.CreatedAt,
		Active:       r.IsActive,
		Addresses: []entity.Address{{
			ID:         r.ID,
			Street:     street,
			Number:     number,
			Complement: r.Complement,
			District:   r.District,
			City:       r.City,
			State:      r.State,
			PostalCode: r.PostalCode,
			Primary:    true,
		}},
	}
}

func CustomersFromRecords(rs []entity.CustomerRecord) []entity.Customer {
	out := make([]entity.Customer, 0, len(rs))
	for _, r := range rs {
		out = append(out, CustomerFromRecord(r))
	}
	return out
}

// RecordInputFromForm builds the API body from the customer form. Only the
// first address is sent. When existing is given (update) its creation date
// is carried over.
func RecordInputFromForm(f entity.CustomerForm, existing *entity.CustomerRecord) entity.CustomerRecordInput {
	in := entity.CustomerRecordInput{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		IsActive:   f.Active,
		TaxID:      f.TaxID,
		PersonType: f.PersonType,
	}
	if len(f.Addresses) > 0 {
		a := f.Addresses[0]
		in.Street = JoinStreet(a.Street, a.Number)
		in.District = a.District
		in.City = a.City
		in.State = a.State
		in.PostalCode = a.PostalCode
		in.Complement = a.Complement
	}
	if existing != nil {
		created := existing.CreatedAt
		in.CreatedAt = &created
	}
	return in
}

// RecordInputFromRecord copies a stored record back into an update body.
func RecordInputFromRecord(r entity.CustomerRecord) entity.CustomerRecordInput {
	created := r.CreatedAt
	return entity.CustomerRecordInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		IsActive:   r.IsActive,
		TaxID:      r.TaxID,
		PersonType: r.PersonType,
		Street:     r.Street,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Complement: r.Complement,
		CreatedAt:  &created,
	}
}
