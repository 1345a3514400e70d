package entity

const (
	PersonIndividual = "FISICA"
	PersonCompany    = "JURIDICA"
)

// CustomerRecord is the customer exactly as the API stores it: one flat
// address whose street field carries "street, number".
type CustomerRecord struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CreatedAt  Timestamp  `json:"createdAt"`
	UpdatedAt  *Timestamp `json:"updatedAt,omitempty"`
	IsActive   bool       `json:"isActive"`
	TaxID      string     `json:"cpfCnpj"`
	PersonType string     `json:"tipoPessoa"`
	Street     string     `json:"rua"`
	District   string     `json:"bairro"`
	City       string     `json:"cidade"`
	State      string     `json:"estado"`
	PostalCode string     `json:"cep"`
	Complement string     `json:"complemento,omitempty"`
}

// CustomerRecordInput is the create/update body sent to the API.
type CustomerRecordInput struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	IsActive   bool       `json:"isActive"`
	TaxID      string     `json:"cpfCnpj"`
	PersonType string     `json:"tipoPessoa"`
	Street     string     `json:"rua"`
	District   string     `json:"bairro"`
	City       string     `json:"cidade"`
	State      string     `json:"estado"`
	PostalCode string     `json:"cep"`
	Complement string     `json:"complemento"`
	CreatedAt  *Timestamp `json:"createdAt,omitempty"`
}

type Address struct {
	ID         uint   `json:"id"`
	Street     string `json:"logradouro" binding:"required"`
	Number     string `json:"numero" binding:"required"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro" binding:"required"`
	City       string `json:"cidade" binding:"required"`
	State      string `json:"estado" binding:"required,len=2"`
	PostalCode string `json:"cep" binding:"required,cep"`
	Primary    bool   `json:"principal"`
}

// Customer is the view model used by screens and by the PDV session.
type Customer struct {
	ID           uint       `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	Phone        string     `json:"telefone"`
	TaxID        string     `json:"cpfCnpj"`
	PersonType   string     `json:"tipoPessoa"`
	RegisteredAt Timestamp  `json:"dataCadastro"`
	BirthDate    *Timestamp `json:"dataNascimento,omitempty"`
	Active       bool       `json:"ativo"`
	Notes        string     `json:"observacoes,omitempty"`
	Addresses    []Address  `json:"enderecos"`
}

// PrimaryAddress returns the address flagged principal, if any.
func (c *Customer) PrimaryAddress() (Address, bool) {
	if c == nil {
		return Address{}, false
	}
	for _, a := range c.Addresses {
		if a.Primary {
			return a, true
		}
	}
	return Address{}, false
}

// CustomerForm is what the customer screen submits.
type CustomerForm struct {
	Name       string     `json:"nome" binding:"required,min=3,max=100"`
	Email      string     `json:"email" binding:"required,email"`
	Phone      string     `json:"telefone" binding:"required"`
	TaxID      string     `json:"cpfCnpj" binding:"required"`
	PersonType string     `json:"tipoPessoa" binding:"required,oneof=FISICA JURIDICA"`
	BirthDate  *Timestamp `json:"dataNascimento,omitempty"`
	Active     bool       `json:"ativo"`
	Notes      string     `json:"observacoes" binding:"max=500"`
	Addresses  []Address  `json:"enderecos" binding:"required,min=1,dive"`
}

type PaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
