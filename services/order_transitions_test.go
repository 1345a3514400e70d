package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.OrderOpen, entity.OrderInProgress, true},
		{entity.OrderInProgress, entity.OrderAwaitingPayment, true},
		{entity.OrderAwaitingPayment, entity.OrderClosed, true},
		{entity.OrderOpen, entity.OrderCancelled, true},
		{entity.OrderClosed, entity.OrderOpen, false},
		{entity.OrderCancelled, entity.OrderInProgress, false},
		{entity.OrderClosed, entity.OrderClosed, true},
		{entity.OrderOpen, "Pago", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("GET /orders/1", http.StatusOK, map[string]any{"id": 1, "status": entity.OrderOpen})
	api.reply("GET /orders/2", http.StatusOK, map[string]any{"id": 2, "status": entity.OrderClosed})
	api.reply("PUT /orders/1/status", http.StatusNoContent, nil)
	svc := NewOrderService(repository.NewOrderRepository(api.client()))
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, 1, entity.OrderInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInProgress, o.Status)
	assert.Equal(t, entity.OrderInProgress, decodeBody(t, api.callsTo("PUT", "/orders/1/status")[0])["status"])

	_, err = svc.UpdateStatus(ctx, 2, entity.OrderOpen)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, api.callsTo("PUT", "/orders/2/status"))

	_, err = svc.UpdateStatus(ctx, 1, "Qualquer")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderService_ListUsesTotalCountHeader(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Total-Count", "42")
		writeJSON(w, http.StatusOK, []any{map[string]any{"id": 1}, map[string]any{"id": 2}})
	})
	svc := NewOrderService(repository.NewOrderRepository(api.client()))

	cid := uint(3)
	page, err := svc.List(context.Background(), entity.OrderFilter{Status: "Aberto", CustomerID: &cid, PageNumber: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 42, page.TotalCount)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, "customerId=3&pageNumber=2&pageSize=20&status=Aberto", api.callsTo("GET", "/orders")[0].Query)
}
