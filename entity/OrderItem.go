package entity

type OrderItem struct {
	ID          uint    `json:"id,omitempty"`
	OrderID     uint    `json:"orderId,omitempty"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}
