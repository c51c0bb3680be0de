package entities

import "time"

// OrderStatus is the lifecycle of an ordem de serviço.
type OrderStatus string

const (
	OrderStatusOrcamento             OrderStatus = "orcamento"
	OrderStatusAguardandoAprovacao   OrderStatus = "aguardando_aprovacao"
	OrderStatusFabricacao            OrderStatus = "fabricacao"
	OrderStatusAguardandoPecaCliente OrderStatus = "aguardando_peca_cliente"
	OrderStatusAguardandoPecaInterno OrderStatus = "aguardando_peca_interno"
	OrderStatusFinalizado            OrderStatus = "finalizado"
	OrderStatusEntregue              OrderStatus = "entregue"
)

var orderStatuses = []OrderStatus{
	OrderStatusOrcamento,
	OrderStatusAguardandoAprovacao,
	OrderStatusFabricacao,
	OrderStatusAguardandoPecaCliente,
	OrderStatusAguardandoPecaInterno,
	OrderStatusFinalizado,
	OrderStatusEntregue,
}

func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityBaixa   Priority = "baixa"
	PriorityMedia   Priority = "media"
	PriorityAlta    Priority = "alta"
	PriorityUrgente Priority = "urgente"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// Order is the service order (ordem de serviço) aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (user assigned)
//   - etapas: map keyed by StageKey.String()
//   - servicos: list of services with their sub-tasks
//
// Progress is the persisted order-level fraction (0.0–1.0), recomputed on
// every stage or service change.
type Order struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	CustomerID       string                   `json:"customer_id"`
	Priority         Priority                 `json:"priority"`
	OpenedAt         time.Time                `json:"opened_at"`
	ExpectedDelivery *time.Time               `json:"expected_delivery,omitempty"`
	Status           OrderStatus              `json:"status"`
	Services         []Service                `json:"services"`
	Stages           map[string]StageProgress `json:"stages"`
	Progress         float64                  `json:"progress"`
	EstimatedHours   float64                  `json:"estimated_hours"`
	TotalWorkedMs    int64                    `json:"total_worked_ms"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// Service returns a pointer into o.Services for the given type, or nil.
func (o *Order) Service(t ServiceType) *Service {
	for i := range o.Services {
		if o.Services[i].Type == t {
			return &o.Services[i]
		}
	}
	return nil
}

// StageProgress returns a copy of the progress for key; the zero value means not started.
func (o Order) StageProgress(key StageKey) StageProgress {
	if o.Stages == nil {
		return StageProgress{}
	}
	return o.Stages[key.String()]
}

func (o *Order) SetStageProgress(key StageKey, sp StageProgress) {
	if o.Stages == nil {
		o.Stages = make(map[string]StageProgress)
	}
	o.Stages[key.String()] = sp
}

// ServiceTypes lists the distinct service types present on the order, in order of appearance.
func (o Order) ServiceTypes() []ServiceType {
	seen := make(map[ServiceType]bool, len(o.Services))
	out := make([]ServiceType, 0, len(o.Services))
	for _, s := range o.Services {
		if seen[s.Type] {
			continue
		}
		seen[s.Type] = true
		out = append(out, s.Type)
	}
	return out
}

// ServicesForStage returns the services whose type maps to stage.
func (o Order) ServicesForStage(stage Stage) []Service {
	out := make([]Service, 0)
	for _, s := range o.Services {
		if s.Type.Stage() == stage {
			out = append(out, s)
		}
	}
	return out
}

// StageApplicable reports whether stage applies to this order.
func (o Order) StageApplicable(stage Stage) bool {
	if stage.AlwaysApplicable() {
		return true
	}
	return len(o.ServicesForStage(stage)) > 0
}
