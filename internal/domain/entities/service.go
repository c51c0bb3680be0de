package entities

import "time"

// ServiceType is the kind of work requested on an order.
type ServiceType string

const (
	ServiceBloco       ServiceType = "bloco"
	ServiceBiela       ServiceType = "biela"
	ServiceCabecote    ServiceType = "cabecote"
	ServiceVirabrequim ServiceType = "virabrequim"
	ServiceEixoComando ServiceType = "eixo_comando"
	ServiceMontagem    ServiceType = "montagem"
	ServiceDinamometro ServiceType = "dinamometro"
	ServiceLavagem     ServiceType = "lavagem"
)

var ServiceTypes = []ServiceType{
	ServiceBloco,
	ServiceBiela,
	ServiceCabecote,
	ServiceVirabrequim,
	ServiceEixoComando,
	ServiceMontagem,
	ServiceDinamometro,
	ServiceLavagem,
}

func (t ServiceType) Valid() bool {
	for _, v := range ServiceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Stage maps a service type to the stage where its work happens.
func (t ServiceType) Stage() Stage {
	switch t {
	case ServiceBloco, ServiceBiela, ServiceCabecote, ServiceVirabrequim, ServiceEixoComando:
		return StageRetifica
	case ServiceMontagem:
		return StageMontagem
	case ServiceDinamometro:
		return StageDinamometro
	case ServiceLavagem:
		return StageLavagem
	}
	return ""
}

// SubAtividade is one checklist item of a service.
//
// Selected marks the item as part of this order's checklist; only selected
// items may be completed.
type SubAtividade struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Selected       bool    `json:"selected"`
	Completed      bool    `json:"completed"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type Service struct {
	Type            ServiceType    `json:"type"`
	Description     string         `json:"description"`
	Completed       bool           `json:"completed"`
	ResponsibleID   string         `json:"responsible_id,omitempty"`
	ResponsibleName string         `json:"responsible_name,omitempty"`
	CompletionDate  *time.Time     `json:"completion_date,omitempty"`
	Subtasks        []SubAtividade `json:"subtasks"`
}

func (s *Service) Subtask(id string) *SubAtividade {
	for i := range s.Subtasks {
		if s.Subtasks[i].ID == id {
			return &s.Subtasks[i]
		}
	}
	return nil
}

// AllSelectedCompleted reports whether every selected sub-task is completed.
// A service with no selected sub-tasks trivially satisfies it.
func (s Service) AllSelectedCompleted() bool {
	for _, st := range s.Subtasks {
		if st.Selected && !st.Completed {
			return false
		}
	}
	return true
}
