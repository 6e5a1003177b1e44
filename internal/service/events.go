package service

// EventPublisher receives order events after they are committed
type EventPublisher interface {
	Publish(event interface{})
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
)

type OrderEvent struct {
	Type    string `json:"type"`
	OrderID uint   `json:"order_id"`
	TableID uint   `json:"table_id,omitempty"`
	Status  string `json:"status"`
	Lines   int    `json:"lines,omitempty"`
	Actor   string `json:"actor"`
}

type nopPublisher struct{}

func (nopPublisher) Publish(interface{}) {}
