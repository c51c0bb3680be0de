package interfaces

import (
	"context"

	"retifica_os/internal/domain/entities"
)

// ISubtaskPresetRepository is the catalog used to seed new services' checklists.
type ISubtaskPresetRepository interface {
	ListByServiceType(ctx context.Context, t entities.ServiceType) ([]entities.SubtaskPreset, error)
}
