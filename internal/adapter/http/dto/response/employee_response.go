package response

import (
	"time"

	"retifica_os/internal/domain/entities"

	"github.com/samber/lo"
)

type BusyResponse struct {
	OrderID     string    `json:"order_id"`
	Stage       string    `json:"stage"`
	ServiceType string    `json:"service_type,omitempty"`
	Since       time.Time `json:"since"`
}

type EmployeeResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Specialties  []string      `json:"specialties"`
	Availability string        `json:"availability"`
	BusyWith     *BusyResponse `json:"busy_with,omitempty"`
}

func FromEmployeeStatus(s entities.EmployeeStatus) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           s.ID,
		Name:         s.Name,
		Role:         string(s.Role),
		Specialties:  lo.Map(s.Specialties, func(t entities.ServiceType, _ int) string { return string(t) }),
		Availability: string(s.Availability),
	}
	if s.BusyWith != nil {
		resp.BusyWith = &BusyResponse{
			OrderID:     s.BusyWith.OrderID,
			Stage:       string(s.BusyWith.Stage),
			ServiceType: string(s.BusyWith.ServiceType),
			Since:       s.BusyWith.Since,
		}
	}
	return resp
}

type PresetResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	Position       int     `json:"position"`
}

func FromPreset(p entities.SubtaskPreset) PresetResponse {
	return PresetResponse{ID: p.ID, Name: p.Name, EstimatedHours: p.EstimatedHours, Position: p.Position}
}
