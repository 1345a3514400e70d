package utils

import (
	"regexp"

	"github.com/AndersonMairnck/frontFynanceo/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	nonDigit   = regexp.MustCompile(`\D`)
)

// RegisterValidators adds the "cep" tag and the CPF/CNPJ rule to gin's
// validator. Safe to call more than once.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	RegisterOn(v)
}

func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(customerFormRules, entity.CustomerForm{})
}

// ValidTaxID checks the digit count only: 11 for FISICA, 14 otherwise.
// Empty is accepted; "required" covers it.
func ValidTaxID(taxID, personType string) bool {
	if taxID == "" {
		return true
	}
	n := len(nonDigit.ReplaceAllString(taxID, ""))
	if personType == entity.PersonIndividual {
		return n == 11
	}
	return n == 14
}

func customerFormRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(entity.CustomerForm)
	if !ValidTaxID(f.TaxID, f.PersonType) {
		sl.ReportError(f.TaxID, "TaxID", "cpfCnpj", "cpfcnpj", "")
	}
}
