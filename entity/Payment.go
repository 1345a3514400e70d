package entity

type PaymentRequest struct {
	OrderID       uint    `json:"orderId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId,omitempty"`
}
