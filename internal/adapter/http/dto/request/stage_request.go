package request

import (
	"strings"

	"retifica_os/internal/domain/entities"
)

// StageActionRequest is the optional body of the stage and service actions.
type StageActionRequest struct {
	ResponsibleID string `json:"responsible_id"`
	Reason        string `json:"reason"`
}

func (r StageActionRequest) Responsible() string {
	return strings.TrimSpace(r.ResponsibleID)
}

type AssignRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	// Debounce coalesces rapid picker changes into one write.
	Debounce bool `json:"debounce"`
}

// ParseStageKey builds the key from the :stage path value and the
// service_type query parameter.
func ParseStageKey(stage, serviceType string) (entities.StageKey, error) {
	k := entities.StageKey{
		Stage:       entities.Stage(strings.TrimSpace(stage)),
		ServiceType: entities.ServiceType(strings.TrimSpace(serviceType)),
	}
	if err := k.Validate(); err != nil {
		return entities.StageKey{}, err
	}
	return k, nil
}

func ParseServiceType(s string) (entities.ServiceType, bool) {
	t := entities.ServiceType(strings.TrimSpace(s))
	return t, t.Valid()
}
