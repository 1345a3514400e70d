package utils

import (
	"testing"

	"github.com/AndersonMairnck/frontFynanceo/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterOn(v)
	return v
}

func validForm() entity.CustomerForm {
	return entity.CustomerForm{
		Name: "Ana Souza", Email: "ana@x.com", Phone: "11999990000",
		TaxID: "123.456.789-01", PersonType: entity.PersonIndividual, Active: true,
		Addresses: []entity.Address{{
			Street: "Rua A", Number: "1", District: "Centro", City: "SP", State: "SP", PostalCode: "01001-000", Primary: true,
		}},
	}
}

func TestValidTaxID(t *testing.T) {
	assert.True(t, ValidTaxID("123.456.789-01", entity.PersonIndividual))
	assert.False(t, ValidTaxID("123456789", entity.PersonIndividual))
	assert.True(t, ValidTaxID("12.345.678/0001-90", entity.PersonCompany))
	assert.False(t, ValidTaxID("123.456.789-01", entity.PersonCompany))
	assert.True(t, ValidTaxID("", entity.PersonCompany))
}

func TestCustomerFormValidation(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(validForm()))

	f := validForm()
	f.TaxID = "123"
	assert.Error(t, v.Struct(f), "short CPF")

	f = validForm()
	f.Addresses[0].PostalCode = "0100-1000"
	assert.Error(t, v.Struct(f), "bad CEP")

	f = validForm()
	f.Addresses[0].PostalCode = "01001000"
	assert.NoError(t, v.Struct(f))

	f = validForm()
	f.Addresses = nil
	assert.Error(t, v.Struct(f))

	f = validForm()
	f.PersonType = "OUTRA"
	assert.Error(t, v.Struct(f))

	f = validForm()
	f.Addresses[0].State = "São Paulo"
	assert.Error(t, v.Struct(f))
}

func TestProductInputValidation(t *testing.T) {
	v := newValidator()
	ok := entity.ProductInput{Name: "Café", Price: 4.5, StockQuantity: 3, MinStockLevel: 1, CategoryID: 1}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Price = 0
	assert.Error(t, v.Struct(bad))

	bad = ok
	bad.StockQuantity = -1
	assert.Error(t, v.Struct(bad))

	bad = ok
	bad.CategoryID = 0
	assert.Error(t, v.Struct(bad))

	bad = ok
	bad.Name = "C"
	assert.Error(t, v.Struct(bad))
}
