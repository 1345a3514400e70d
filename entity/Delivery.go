package entity

import "encoding/json"

type DeliveryOrder struct {
	ID                    uint        `json:"id"`
	OrderID               uint        `json:"orderId"`
	OrderNumber           string      `json:"orderNumber"`
	CustomerName          string      `json:"customerName"`
	CustomerPhone         string      `json:"customerPhone"`
	CustomerAddress       string      `json:"customerAddress"`
	DeliveryAddress       string      `json:"deliveryAddress,omitempty"`
	DeliveryPerson        string      `json:"deliveryPerson"`
	Status                string      `json:"status"`
	DeliveryFee           float64     `json:"deliveryFee"`
	EstimatedDeliveryTime *Timestamp  `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *Timestamp  `json:"actualDeliveryTime"`
	CreatedAt             Timestamp   `json:"createdAt"`
	UpdatedAt             Timestamp   `json:"updatedAt"`
	OrderAmount           float64     `json:"orderAmount"`
	OrderItems            []OrderItem `json:"orderItems"`
	Notes                 string      `json:"notes,omitempty"`
}

func (d *DeliveryOrder) UnmarshalJSON(b []byte) error {
	type plain DeliveryOrder
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.OrderItems == nil {
		p.OrderItems = []OrderItem{}
	}
	*d = DeliveryOrder(p)
	return nil
}

type DeliveryStats struct {
	TotalDeliveries      int     `json:"totalDeliveries"`
	PendingDeliveries    int     `json:"pendingDeliveries"`
	InProgressDeliveries int     `json:"inProgressDeliveries"`
	CompletedDeliveries  int     `json:"completedDeliveries"`
	TodayDeliveries      int     `json:"todayDeliveries"`
	AverageDeliveryTime  float64 `json:"averageDeliveryTime"`
}

type DeliveryFilter struct {
	Status         string `form:"status"`
	Date           string `form:"date"`
	Type           string `form:"type"`
	DeliveryPerson string `form:"deliveryPerson"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}

type AssignDeliveryPersonRequest struct {
	DeliveryPerson string `json:"deliveryPerson" binding:"required"`
}

type EstimatedTimeRequest struct {
	EstimatedDeliveryTime Timestamp `json:"estimatedDeliveryTime"`
}
