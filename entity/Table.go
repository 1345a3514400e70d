package entity

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	ID             uint   `json:"id"`
	Number         int    `json:"number"`
	Capacity       int    `json:"capacity"`
	Status         string `json:"status"`
	CurrentOrderID *uint  `json:"currentOrderId,omitempty"`
}
