package entity

import (
	"gorm.io/gorm"
)

// SaleRecord is the terminal's local journal line for a submitted sale.
type SaleRecord struct {
	gorm.Model
	SessionID     string  `json:"sessionId" gorm:"size:36;index"`
	OrderID       uint    `json:"orderId" gorm:"index"`
	OrderNumber   string  `json:"orderNumber"`
	OrderType     string  `json:"orderType" gorm:"size:16"`
	PaymentMethod string  `json:"paymentMethod"`
	CustomerID    *uint   `json:"customerId,omitempty"`
	ItemCount     int     `json:"itemCount"`
	Total         float64 `json:"total"`
	Operator      string  `json:"operator"`
}
