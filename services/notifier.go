package services

// Event topics pushed to the websocket hub and the broker.
const (
	TopicSessionUpdated  = "pdv.session.updated"
	TopicOrderFinalized  = "pdv.order.finalized"
	TopicTableOrders     = "pdv.table.orders"
	TopicTableOrderPaid  = "pdv.table.paid"
	TopicCustomerChanged = "pdv.customer.changed"
)

// Notifier receives state-change events. Implementations must not block.
type Notifier interface {
	Notify(topic string, payload any)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, any) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
