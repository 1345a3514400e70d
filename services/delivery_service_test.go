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

func TestDelivery_ListFiltersAndDefaults(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("GET /deliveries", http.StatusOK, []any{
		map[string]any{"id": 1, "orderId": 9, "status": entity.DeliveryPending, "orderItems": nil, "estimatedDeliveryTime": nil},
	})
	svc := NewDeliveryService(repository.NewDeliveryRepository(api.client()))

	out, err := svc.List(context.Background(), entity.DeliveryFilter{Status: entity.DeliveryPending, DeliveryPerson: "João"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].OrderItems)
	assert.Nil(t, out[0].EstimatedDeliveryTime)
	assert.Equal(t, "deliveryPerson=Jo%C3%A3o&status=Pendente", api.callsTo("GET", "/deliveries")[0].Query)
}

func TestDelivery_Assign(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("PATCH /deliveries/4/assign", http.StatusOK, map[string]any{"id": 4, "deliveryPerson": "Maria"})
	svc := NewDeliveryService(repository.NewDeliveryRepository(api.client()))

	d, err := svc.Assign(context.Background(), 4, "Maria")
	require.NoError(t, err)
	assert.Equal(t, "Maria", d.DeliveryPerson)
	assert.Equal(t, "Maria", decodeBody(t, api.callsTo("PATCH", "/deliveries/4/assign")[0])["deliveryPerson"])
}
