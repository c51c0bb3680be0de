package interfaces

import (
	"context"
	"time"

	"retifica_os/internal/domain/entities"
)

// OrderUpdate is a partial write of an order document. Stages holds only
// the keys that changed; nil Services or Status leave them untouched.
// Derived totals and UpdatedAt are always written.
type OrderUpdate struct {
	Stages         map[string]entities.StageProgress
	Services       []entities.Service
	Status         *entities.OrderStatus
	Progress       float64
	EstimatedHours float64
	TotalWorkedMs  int64
	UpdatedAt      time.Time
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Reads are consistent; a missing order is returned as a zero Order (empty ID).
// Update applies all fields of an OrderUpdate in a single write.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
