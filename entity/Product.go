package entity

type Product struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Price             float64    `json:"price"`
	CostPrice         float64    `json:"costPrice"`
	StockQuantity     int        `json:"stockQuantity"`
	MinStockLevel     int        `json:"minStockLevel"`
	CategoryID        uint       `json:"categoryId"`
	CategoryName      string     `json:"categoryName"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         Timestamp  `json:"createdAt"`
	ModifiedAt        *Timestamp `json:"modifiedAt,omitempty"`
	DeactivatedAt     *Timestamp `json:"deactivatedAt,omitempty"`
	DeactivatedReason string     `json:"deactivatedReason,omitempty"`
}

// LowStock reports whether the product is at or below its minimum level.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// ProductInput is the body of product create/update.
type ProductInput struct {
	Name          string  `json:"name" binding:"required,min=2,max=200"`
	Description   string  `json:"description" binding:"max=1000"`
	Price         float64 `json:"price" binding:"required,gte=0.01"`
	CostPrice     float64 `json:"costPrice" binding:"gte=0"`
	StockQuantity int     `json:"stockQuantity" binding:"gte=0"`
	MinStockLevel int     `json:"minStockLevel" binding:"gte=0"`
	CategoryID    uint    `json:"categoryId" binding:"required,gte=1"`
}

type DeactivateRequest struct {
	Reason string `json:"reason"`
}
