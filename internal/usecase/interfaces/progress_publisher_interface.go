package interfaces

import (
	"context"

	"retifica_os/internal/domain/entities"
)

// IProgressPublisher notifies downstream consumers after a confirmed order write.
type IProgressPublisher interface {
	PublishOrderProgress(ctx context.Context, e entities.OrderProgressEvent) error
}
