package entity

// CartLine is one product in an in-progress sale. Name, price and stock are
// snapshots taken when the product was first added.
type CartLine struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
	Stock       int     `json:"stock"`
}
