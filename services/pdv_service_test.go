package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/AndersonMairnck/frontFynanceo/entity"
	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newJournal(t *testing.T) *JournalService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.SaleRecord{}))
	return NewJournalService(db, repository.NewSaleJournalRepository(db))
}

func newPDV(t *testing.T) (*fakeAPI, *PDVService) {
	api := newFakeAPI(t)
	svc := NewPDVService(repository.NewOrderRepository(api.client()), newJournal(t), nil)
	return api, svc
}

func TestFinalize_EmptyCart_NoCall(t *testing.T) {
	api, svc := newPDV(t)
	sess := svc.Open()
	sess.Config.SelectPaymentMethod("Dinheiro")

	order, err := sess.Finalize(context.Background())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, "Carrinho vazio", err.Error())
	assert.Equal(t, 0, api.totalCalls())
	assert.Empty(t, sess.Error())
}

func TestFinalize_MissingPayment_NoCall(t *testing.T) {
	api, svc := newPDV(t)
	sess := svc.Open()
	sess.Cart.AddItem(product(1, 10, 5))

	_, err := sess.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrMissingPaymentMethod)
	assert.Equal(t, 0, api.totalCalls())
	assert.Equal(t, 1, sess.Cart.Len())
}

func TestFinalize_DineInCash(t *testing.T) {
	api, svc := newPDV(t)
	api.reply("POST /orders/create", http.StatusCreated, map[string]any{
		"id": 41, "orderNumber": "PED-41", "status": "Finalizado", "totalAmount": 20, "items": nil,
	})

	sess := svc.Open()
	sess.Cart.AddItem(product(1, 10, 5))
	sess.Cart.AddItem(product(1, 10, 5))
	sess.Config.SelectTable(&entity.Table{ID: 2, Number: 2})
	sess.Config.SelectCustomer(&entity.Customer{ID: 5, Name: "Ana"})
	sess.Config.SelectPaymentMethod("Dinheiro")

	ctx := repository.WithOperator(context.Background(), "caixa01")
	order, err := sess.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(41), order.ID)
	assert.NotNil(t, order.Items)

	calls := api.callsTo("POST", "/orders/create")
	require.Len(t, calls, 1)
	assert.Equal(t, 1, api.totalCalls())

	body := decodeBody(t, calls[0])
	assert.Equal(t, "Dinheiro", body["paymentMethod"])
	assert.Equal(t, "ConsumoLocal", body["deliveryType"])
	assert.EqualValues(t, 5, body["customerId"])
	assert.Equal(t, []any{map[string]any{"productId": 1.0, "quantity": 2.0, "unitPrice": 10.0}}, body["items"])

	view := sess.View()
	assert.Empty(t, view.Items)
	assert.Nil(t, view.Customer)
	assert.Nil(t, view.Table)
	assert.Empty(t, view.PaymentMethod)
	assert.Equal(t, entity.OrderDineIn, view.OrderType)
	assert.False(t, view.Loading)

	recs, err := svc.Journal.Recent(sess.ID, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint(41), recs[0].OrderID)
	assert.Equal(t, 2, recs[0].ItemCount)
	assert.Equal(t, "caixa01", recs[0].Operator)
	require.NotNil(t, recs[0].CustomerID)
	assert.Equal(t, uint(5), *recs[0].CustomerID)
}

func TestFinalize_WalkInTakeawayOmitsCustomer(t *testing.T) {
	api, svc := newPDV(t)
	api.reply("POST /orders/create", http.StatusOK, map[string]any{"id": 1})

	sess := svc.Open()
	sess.Cart.AddItem(product(3, 4.5, 5))
	sess.Config.SelectOrderType(entity.OrderTakeaway)
	sess.Config.SelectPaymentMethod("pix")

	_, err := sess.Finalize(context.Background())
	require.NoError(t, err)

	body := decodeBody(t, api.callsTo("POST", "/orders/create")[0])
	assert.Equal(t, "Retirada", body["deliveryType"])
	_, has := body["customerId"]
	assert.False(t, has)
	assert.Equal(t, entity.OrderTakeaway, sess.Config.Snapshot().OrderType)
}

func TestFinalize_Delivery(t *testing.T) {
	api, svc := newPDV(t)
	api.reply("POST /orders/create-delivery", http.StatusCreated, map[string]any{"id": 7, "isDelivery": true})

	sess := svc.Open()
	sess.Cart.AddItem(product(2, 30, 5))
	sess.Config.SelectOrderType(entity.OrderDelivery)
	sess.Config.SelectPaymentMethod("cartao_credito")
	sess.Config.SelectCustomer(&entity.Customer{
		ID:    8,
		Phone: "11999990000",
		Addresses: []entity.Address{
			{Street: "Rua B", Number: "2"},
			{Street: "Rua Principal", Number: "10", Primary: true},
		},
	})

	_, err := sess.Finalize(context.Background())
	require.NoError(t, err)
	assert.Empty(t, api.callsTo("POST", "/orders/create"))

	body := decodeBody(t, api.callsTo("POST", "/orders/create-delivery")[0])
	info := body["deliveryInfo"].(map[string]any)
	assert.Equal(t, "Delivery", info["deliveryType"])
	assert.Equal(t, "11999990000", info["customerPhone"])
	assert.Equal(t, "Rua Principal", info["deliveryAddress"])
	_, hasType := body["deliveryType"]
	assert.False(t, hasType)
}

func TestFinalize_DeliveryWithoutCustomer_EmptyAddress(t *testing.T) {
	api, svc := newPDV(t)
	api.reply("POST /orders/create-delivery", http.StatusCreated, map[string]any{"id": 7})

	sess := svc.Open()
	sess.Cart.AddItem(product(2, 30, 5))
	sess.Config.SelectOrderType(entity.OrderDelivery)
	sess.Config.SelectPaymentMethod("pix")

	_, err := sess.Finalize(context.Background())
	require.NoError(t, err)

	body := decodeBody(t, api.callsTo("POST", "/orders/create-delivery")[0])
	info := body["deliveryInfo"].(map[string]any)
	assert.Equal(t, "", info["deliveryAddress"])
	_, hasPhone := info["customerPhone"]
	assert.False(t, hasPhone)
}

func TestFinalize_FailureKeepsState(t *testing.T) {
	api, svc := newPDV(t)
	api.reply("POST /orders/create", http.StatusInternalServerError, map[string]any{"message": "boom"})

	sess := svc.Open()
	sess.Cart.AddItem(product(1, 10, 5))
	sess.Config.SelectPaymentMethod("Dinheiro")

	_, err := sess.Finalize(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Erro interno do servidor", err.Error())
	assert.Len(t, api.callsTo("POST", "/orders/create"), 1, "no retry")

	view := sess.View()
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "Dinheiro", view.PaymentMethod)
	assert.Equal(t, "Erro interno do servidor", view.Error)
	assert.False(t, view.Loading)

	recs, err := svc.Journal.Recent(sess.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, recs)

	sess.ClearError()
	assert.Empty(t, sess.Error())
}

func TestFinalize_ConcurrentCallsEachSubmit(t *testing.T) {
	api, svc := newPDV(t)
	release := make(chan struct{})
	api.handle("POST /orders/create", func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})

	sess := svc.Open()
	sess.Cart.AddItem(product(1, 10, 5))
	sess.Config.SelectPaymentMethod("Dinheiro")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Finalize(context.Background())
		}()
	}
	// both requests must be in flight at once
	for api.totalCalls() < 2 {
		time.Sleep(time.Millisecond)
	}
	close(release)
	wg.Wait()

	assert.Len(t, api.callsTo("POST", "/orders/create"), 2)
}

func TestFinalize_NotifiesListeners(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("POST /orders/create", http.StatusCreated, map[string]any{"id": 3})
	n := new(mockNotifier)
	n.On("Notify", TopicOrderFinalized, mock.Anything).Return().Once()

	svc := NewPDVService(repository.NewOrderRepository(api.client()), nil, n)
	sess := svc.Open()
	sess.Cart.AddItem(product(1, 1, 1))
	sess.Config.SelectPaymentMethod("pix")

	_, err := sess.Finalize(context.Background())
	require.NoError(t, err)
	n.AssertExpectations(t)
}

func TestPDVService_Registry(t *testing.T) {
	_, svc := newPDV(t)
	a := svc.Open()
	b := svc.Open()
	assert.NotEqual(t, a.ID, b.ID)

	got, err := svc.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Len(t, svc.List(), 2)

	require.NoError(t, svc.Close(a.ID))
	_, err = svc.Get(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(a.ID), ErrSessionNotFound)
}
