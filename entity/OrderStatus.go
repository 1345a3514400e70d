package entity

// Table order statuses as the API spells them.
const (
	OrderOpen            = "Aberto"
	OrderInProgress      = "EmAndamento"
	OrderAwaitingPayment = "AguardandoPagamento"
	OrderClosed          = "Finalizado"
	OrderCancelled       = "Cancelado"
)

// Delivery statuses.
const (
	DeliveryPending    = "Pendente"
	DeliveryPreparing  = "EmPreparo"
	DeliveryOnRoute    = "EmRota"
	DeliveryDispatched = "SaiuParaEntrega"
	DeliveryDelivered  = "Entregue"
	DeliveryCancelled  = "Cancelado"
)

// Table order kinds accepted by create-without-payment.
const (
	TableOrderKindTable    = "Mesa"
	TableOrderKindCounter  = "Balcao"
	TableOrderKindDelivery = "Delivery"
)

// OrderType is the sale mode chosen at the PDV.
type OrderType string

const (
	OrderDineIn   OrderType = "dinein"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderDineIn, OrderTakeaway, OrderDelivery:
		return true
	}
	return false
}

// DeliveryType is the tag the standard create endpoint expects.
func (t OrderType) DeliveryType() string {
	switch t {
	case OrderDineIn:
		return "ConsumoLocal"
	case OrderDelivery:
		return "Delivery"
	default:
		return "Retirada"
	}
}
