package services

import (
	"sync"

	"github.com/AndersonMairnck/frontFynanceo/entity"

	"github.com/shopspring/decimal"
)

// Cart holds the lines of one in-progress sale. The zero value is an empty
// cart ready to use.
type Cart struct {
	mu    sync.Mutex
	lines []entity.CartLine
}

func lineTotal(unitPrice float64, qty int) float64 {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(qty))).InexactFloat64()
}

func (c *Cart) indexOf(productID uint) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of p, snapshotting name, price and stock on first
// add. Stock is not checked.
func (c *Cart) AddItem(p entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		l := &c.lines[i]
		l.Quantity++
		l.LineTotal = lineTotal(l.UnitPrice, l.Quantity)
		return
	}
	c.lines = append(c.lines, entity.CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    1,
		LineTotal:   lineTotal(p.Price, 1),
		Stock:       p.StockQuantity,
	})
}

// UpdateQuantity sets a line's quantity; qty <= 0 removes it. Unknown ids
// are ignored.
func (c *Cart) UpdateQuantity(productID uint, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setQuantity(productID, qty)
}

func (c *Cart) setQuantity(productID uint, qty int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
	c.lines[i].LineTotal = lineTotal(c.lines[i].UnitPrice, qty)
}

func (c *Cart) RemoveItem(productID uint) {
	c.UpdateQuantity(productID, 0)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Increment adds one unit unless the line already reached its stock
// snapshot. It reports whether the quantity changed.
func (c *Cart) Increment(productID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(productID)
	if i < 0 || c.lines[i].Quantity >= c.lines[i].Stock {
		return false
	}
	c.setQuantity(productID, c.lines[i].Quantity+1)
	return true
}

// Decrement removes one unit, never going below 1.
func (c *Cart) Decrement(productID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(productID)
	if i < 0 || c.lines[i].Quantity <= 1 {
		return false
	}
	c.setQuantity(productID, c.lines[i].Quantity-1)
	return true
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []entity.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(decimal.NewFromFloat(l.LineTotal))
	}
	return sum.InexactFloat64()
}

// Change is the cash to hand back; never negative.
func (c *Cart) Change(received float64) float64 {
	diff := decimal.NewFromFloat(received).Sub(decimal.NewFromFloat(c.Total()))
	if diff.IsNegative() {
		return 0
	}
	return diff.InexactFloat64()
}
