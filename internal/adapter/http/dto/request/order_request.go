package request

import (
	"errors"
	"strings"
	"time"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase"
)

var (
	ErrInvalidOrderPayload   = errors.New("invalid order payload")
	ErrInvalidSubtaskPayload = errors.New("invalid subtask payload")
)

type ServiceRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type CreateOrderRequest struct {
	ID               string           `json:"id" binding:"required"`
	Name             string           `json:"name" binding:"required"`
	CustomerID       string           `json:"customer_id"`
	Priority         string           `json:"priority"`
	OpenedAt         *time.Time       `json:"opened_at"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
	Services         []ServiceRequest `json:"services"`
}

// ToInput converts the payload, rejecting unknown service types early.
func (r CreateOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	in := usecase.CreateOrderInput{
		ID:               strings.TrimSpace(r.ID),
		Name:             strings.TrimSpace(r.Name),
		CustomerID:       strings.TrimSpace(r.CustomerID),
		Priority:         entities.Priority(strings.TrimSpace(r.Priority)),
		ExpectedDelivery: r.ExpectedDelivery,
		Services:         make([]usecase.NewServiceInput, 0, len(r.Services)),
	}
	if r.OpenedAt != nil {
		in.OpenedAt = *r.OpenedAt
	}
	for _, s := range r.Services {
		t := entities.ServiceType(strings.TrimSpace(s.Type))
		if !t.Valid() {
			return usecase.CreateOrderInput{}, ErrInvalidOrderPayload
		}
		in.Services = append(in.Services, usecase.NewServiceInput{Type: t, Description: strings.TrimSpace(s.Description)})
	}
	return in, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() (entities.OrderStatus, bool) {
	s := entities.OrderStatus(strings.TrimSpace(r.Status))
	return s, s.Valid()
}

type AddSubtaskRequest struct {
	Name           string  `json:"name" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// PatchSubtaskRequest changes the completion and/or selection of one item.
type PatchSubtaskRequest struct {
	Completed *bool `json:"completed"`
	Selected  *bool `json:"selected"`
}

func (r PatchSubtaskRequest) Validate() error {
	if r.Completed == nil && r.Selected == nil {
		return ErrInvalidSubtaskPayload
	}
	return nil
}
