package entities

import "time"

// OrderProgressEvent is emitted after every confirmed order write.
type OrderProgressEvent struct {
	OrderID    string      `json:"order_id"`
	Action     string      `json:"action"`
	Target     string      `json:"target,omitempty"`
	ActorID    string      `json:"actor_id,omitempty"`
	Status     OrderStatus `json:"status"`
	Progress   float64     `json:"progress"`
	OccurredAt time.Time   `json:"occurred_at"`
}
