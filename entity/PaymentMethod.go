package entity

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentMethods are the options the payment screen offers. The checkout
// accepts any non-empty identifier.
var PaymentMethods = []PaymentMethod{
	{ID: "dinheiro", Name: "Dinheiro"},
	{ID: "pix", Name: "PIX"},
	{ID: "cartao_debito", Name: "Cartão de Débito"},
	{ID: "cartao_credito", Name: "Cartão de Crédito"},
}
