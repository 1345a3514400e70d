package entity

import "encoding/json"

// Order is the API's order record, used both for counter sales and for
// table orders.
type Order struct {
	ID            uint           `json:"id"`
	OrderNumber   string         `json:"orderNumber"`
	CustomerID    *uint          `json:"customerId,omitempty"`
	CustomerName  string         `json:"customerName,omitempty"`
	UserID        uint           `json:"userId,omitempty"`
	UserName      string         `json:"userName,omitempty"`
	TableNumber   *int           `json:"tableNumber,omitempty"`
	OrderType     string         `json:"orderType,omitempty"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus,omitempty"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	DeliveryType  string         `json:"deliveryType,omitempty"`
	IsDelivery    bool           `json:"isDelivery"`
	TotalAmount   float64        `json:"totalAmount"`
	Items         []OrderItem    `json:"items"`
	CreatedAt     Timestamp      `json:"createdAt"`
	Notes         string         `json:"notes,omitempty"`
	Delivery      *DeliveryOrder `json:"delivery,omitempty"`
}

// UnmarshalJSON defaults a missing or null items array to an empty one so
// callers never nil-check it.
func (o *Order) UnmarshalJSON(b []byte) error {
	type plain Order
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Items == nil {
		p.Items = []OrderItem{}
	}
	*o = Order(p)
	return nil
}

// Closed reports whether the order no longer accepts items.
func (o Order) Closed() bool {
	return o.Status == OrderClosed || o.Status == OrderCancelled
}

// Table returns the table number and whether the order has one.
func (o Order) Table() (int, bool) {
	if o.TableNumber == nil || *o.TableNumber == 0 {
		return 0, false
	}
	return *o.TableNumber, true
}

// ----- Requests -----

type CreateOrderItem struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
}

type CreateOrderRequest struct {
	CustomerID    *uint             `json:"customerId,omitempty"`
	PaymentMethod string            `json:"paymentMethod"`
	DeliveryType  string            `json:"deliveryType"`
	Items         []CreateOrderItem `json:"items"`
}

type DeliveryInfo struct {
	DeliveryType          string     `json:"deliveryType"`
	DeliveryPerson        string     `json:"deliveryPerson,omitempty"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	CustomerPhone         string     `json:"customerPhone,omitempty"`
	EstimatedDeliveryTime *Timestamp `json:"estimatedDeliveryTime,omitempty"`
}

type CreateDeliveryOrderRequest struct {
	CustomerID    *uint             `json:"customerId,omitempty"`
	PaymentMethod string            `json:"paymentMethod"`
	DeliveryInfo  DeliveryInfo      `json:"deliveryInfo"`
	Items         []CreateOrderItem `json:"items"`
}

type TableOrderRequest struct {
	CustomerID  *uint  `json:"customerId,omitempty"`
	TableNumber *int   `json:"tableNumber,omitempty"`
	OrderType   string `json:"orderType"`
	Notes       string `json:"notes,omitempty"`
}

type AddItemsRequest struct {
	OrderID uint              `json:"orderId"`
	Items   []CreateOrderItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderFilter struct {
	Status     string `form:"status"`
	CustomerID *uint  `form:"customerId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	PageNumber int    `form:"pageNumber"`
	PageSize   int    `form:"pageSize"`
}

type OrderPage struct {
	Orders     []Order `json:"orders"`
	TotalCount int     `json:"totalCount"`
}
