package services

import (
	"testing"

	"github.com/AndersonMairnck/frontFynanceo/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id uint, price float64, stock int) entity.Product {
	return entity.Product{ID: id, Name: "Produto", Price: price, StockQuantity: stock, IsActive: true}
}

func sumLines(lines []entity.CartLine) float64 {
	var s float64
	for _, l := range lines {
		s += l.LineTotal
	}
	return s
}

func TestCart_AddItem_NewAndExisting(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.AddItem(product(2, 2.5, 5))
	c.AddItem(product(1, 10, 5))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].LineTotal)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 22.5, c.Total())
}

func TestCart_AddItem_KeepsPriceSnapshot(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.AddItem(product(1, 99, 5)) // price changed upstream

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10.0, lines[0].UnitPrice)
	assert.Equal(t, 20.0, lines[0].LineTotal)
}

func TestCart_AddItem_NoStockCheck(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 1, 0))
	c.AddItem(product(1, 1, 0))
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestCart_DoubleAddEqualsUpdateToTwo(t *testing.T) {
	var a, b Cart
	a.AddItem(product(7, 3.3, 10))
	a.AddItem(product(7, 3.3, 10))

	b.AddItem(product(7, 3.3, 10))
	b.UpdateQuantity(7, 2)

	assert.Equal(t, a.Lines(), b.Lines())
	assert.Equal(t, a.Total(), b.Total())
}

func TestCart_UpdateQuantity(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.AddItem(product(2, 4, 5))

	c.UpdateQuantity(1, 7) // beyond stock: no clamp here
	assert.Equal(t, 7, c.Lines()[0].Quantity)
	assert.Equal(t, 70.0, c.Lines()[0].LineTotal)

	c.UpdateQuantity(1, 0)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, uint(2), c.Lines()[0].ProductID)

	c.UpdateQuantity(2, -3)
	assert.Empty(t, c.Lines())
}

func TestCart_UpdateQuantity_UnknownIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.UpdateQuantity(99, 4)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 10.0, c.Total())
}

func TestCart_RemoveAndClear(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.AddItem(product(2, 5, 5))

	c.RemoveItem(1)
	c.RemoveItem(1) // absent: fine
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_TotalIsSumOfLineTotals(t *testing.T) {
	var c Cart
	ops := []func(){
		func() { c.AddItem(product(1, 0.1, 9)) },
		func() { c.AddItem(product(2, 0.2, 9)) },
		func() { c.AddItem(product(1, 0.1, 9)) },
		func() { c.UpdateQuantity(2, 3) },
		func() { c.AddItem(product(3, 19.99, 9)) },
		func() { c.RemoveItem(1) },
		func() { c.UpdateQuantity(3, 4) },
	}
	for _, op := range ops {
		op()
		assert.InDelta(t, sumLines(c.Lines()), c.Total(), 1e-9)
		for _, l := range c.Lines() {
			assert.InDelta(t, float64(l.Quantity)*l.UnitPrice, l.LineTotal, 1e-9)
			assert.GreaterOrEqual(t, l.Quantity, 1)
		}
	}
	assert.InDelta(t, 0.6+79.96, c.Total(), 1e-9)
}

func TestCart_IncrementDecrementClamp(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 5, 2))

	assert.True(t, c.Increment(1))
	assert.False(t, c.Increment(1), "stock is 2")
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	assert.True(t, c.Decrement(1))
	assert.False(t, c.Decrement(1), "never below 1")
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	assert.False(t, c.Increment(42))
}

func TestCart_LinesIsACopy(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 5, 2))
	lines := c.Lines()
	lines[0].Quantity = 50
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestCart_Change(t *testing.T) {
	var c Cart
	c.AddItem(product(1, 10, 5))
	c.AddItem(product(1, 10, 5))

	assert.Equal(t, 30.0, c.Change(50))
	assert.Equal(t, 0.0, c.Change(20))
	assert.Equal(t, 0.0, c.Change(5))
}
