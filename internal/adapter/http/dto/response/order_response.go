package response

import (
	"math"
	"sort"
	"time"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/progress"
	"retifica_os/internal/usecase"

	"github.com/samber/lo"
)

type PauseResponse struct {
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

type TimerResponse struct {
	Key       string `json:"key"`
	State     string `json:"state"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Display   string `json:"display"`
}

type StageResponse struct {
	Key             string          `json:"key"`
	Stage           string          `json:"stage"`
	ServiceType     string          `json:"service_type,omitempty"`
	State           string          `json:"state"`
	Percentage      int             `json:"percentage"`
	Completed       bool            `json:"completed"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
	ResponsibleID   string          `json:"responsible_id,omitempty"`
	ResponsibleName string          `json:"responsible_name,omitempty"`
	Pauses          []PauseResponse `json:"pauses"`
	Timer           TimerResponse   `json:"timer"`
}

type SubtaskResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Selected       bool    `json:"selected"`
	Completed      bool    `json:"completed"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type ServiceResponse struct {
	Type               string            `json:"type"`
	Stage              string            `json:"stage"`
	Description        string            `json:"description"`
	Completed          bool              `json:"completed"`
	ResponsibleID      string            `json:"responsible_id,omitempty"`
	ResponsibleName    string            `json:"responsible_name,omitempty"`
	CompletionDate     *time.Time        `json:"completion_date,omitempty"`
	Percentage         int               `json:"percentage"`
	CompletionEligible bool              `json:"completion_eligible"`
	Subtasks           []SubtaskResponse `json:"subtasks"`
}

type OrderResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	CustomerID       string            `json:"customer_id,omitempty"`
	Priority         string            `json:"priority"`
	Status           string            `json:"status"`
	OpenedAt         time.Time         `json:"opened_at"`
	ExpectedDelivery *time.Time        `json:"expected_delivery,omitempty"`
	Progress         float64           `json:"progress"`
	ProgressPercent  int               `json:"progress_percent"`
	EstimatedHours   float64           `json:"estimated_hours"`
	TotalWorkedMs    int64             `json:"total_worked_ms"`
	Services         []ServiceResponse `json:"services"`
	Stages           []StageResponse   `json:"stages"`
	Notices          []NoticeResponse  `json:"notices,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NoticeResponse reports a background responsible change that was not saved.
type NoticeResponse struct {
	Target     string    `json:"target"`
	EmployeeID string    `json:"employee_id"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

func FromAutoSaveFailures(failures []usecase.AutoSaveFailure) []NoticeResponse {
	if len(failures) == 0 {
		return nil
	}
	return lo.Map(failures, func(f usecase.AutoSaveFailure, _ int) NoticeResponse {
		return NoticeResponse{Target: f.Target, EmployeeID: f.EmployeeID, Message: f.Message, At: f.At}
	})
}

// OrderSummaryResponse is the list-view projection.
type OrderSummaryResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	OpenedAt         time.Time  `json:"opened_at"`
	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	ProgressPercent  int        `json:"progress_percent"`
	Services         []string   `json:"services"`
}

// FromOrder renders o with every derived value computed at now: stage
// percentages, live timers and service eligibility.
func FromOrder(o entities.Order, now time.Time) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		Name:             o.Name,
		CustomerID:       o.CustomerID,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		OpenedAt:         o.OpenedAt,
		ExpectedDelivery: o.ExpectedDelivery,
		Progress:         o.Progress,
		ProgressPercent:  percent(o.Progress),
		EstimatedHours:   o.EstimatedHours,
		TotalWorkedMs:    o.TotalWorkedMs,
		Services: lo.Map(o.Services, func(s entities.Service, _ int) ServiceResponse {
			return FromServiceView(usecase.NewServiceView(s))
		}),
		Stages: lo.Map(stageKeys(o), func(k entities.StageKey, _ int) StageResponse {
			return FromStageView(usecase.NewStageView(o, k, now))
		}),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrderSummary(o entities.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:               o.ID,
		Name:             o.Name,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		OpenedAt:         o.OpenedAt,
		ExpectedDelivery: o.ExpectedDelivery,
		ProgressPercent:  percent(o.Progress),
		Services: lo.Map(o.Services, func(s entities.Service, _ int) string {
			return string(s.Type)
		}),
	}
}

func FromStageView(v usecase.StageView) StageResponse {
	sp := v.Progress
	return StageResponse{
		Key:             v.Key.String(),
		Stage:           string(v.Key.Stage),
		ServiceType:     string(v.Key.ServiceType),
		State:           string(v.State),
		Percentage:      v.Percentage,
		Completed:       sp.Completed,
		StartedAt:       sp.StartedAt,
		FinishedAt:      sp.FinishedAt,
		ResponsibleID:   sp.ResponsibleID,
		ResponsibleName: sp.ResponsibleName,
		Pauses: lo.Map(sp.Pauses, func(p entities.Pause, _ int) PauseResponse {
			return PauseResponse{Start: p.Start, End: p.End, Reason: p.Reason}
		}),
		Timer: FromTimerView(v.Timer),
	}
}

func FromTimerView(v usecase.TimerView) TimerResponse {
	return TimerResponse{
		Key:       v.Key.String(),
		State:     string(v.State),
		ElapsedMs: v.Elapsed.Milliseconds(),
		Display:   v.Display,
	}
}

func FromServiceView(v usecase.ServiceView) ServiceResponse {
	s := v.Service
	return ServiceResponse{
		Type:               string(s.Type),
		Stage:              string(s.Type.Stage()),
		Description:        s.Description,
		Completed:          s.Completed,
		ResponsibleID:      s.ResponsibleID,
		ResponsibleName:    s.ResponsibleName,
		CompletionDate:     s.CompletionDate,
		Percentage:         v.Percentage,
		CompletionEligible: v.CompletionEligible,
		Subtasks: lo.Map(s.Subtasks, func(st entities.SubAtividade, _ int) SubtaskResponse {
			return SubtaskResponse{
				ID:             st.ID,
				Name:           st.Name,
				Selected:       st.Selected,
				Completed:      st.Completed,
				EstimatedHours: st.EstimatedHours,
			}
		}),
	}
}

// StageProgressResponse is the payload of the stage progress bar.
type StageProgressResponse struct {
	Key        string `json:"key"`
	State      string `json:"state"`
	Percentage int    `json:"percentage"`
}

func FromStageProgress(v usecase.StageView) StageProgressResponse {
	return StageProgressResponse{Key: v.Key.String(), State: string(v.State), Percentage: v.Percentage}
}

// ServiceProgressResponse is the payload of a service's checklist bar.
type ServiceProgressResponse struct {
	Type               string `json:"type"`
	Percentage         int    `json:"percentage"`
	Completed          bool   `json:"completed"`
	CompletionEligible bool   `json:"completion_eligible"`
}

func FromServiceProgress(v usecase.ServiceView) ServiceProgressResponse {
	return ServiceProgressResponse{
		Type:               string(v.Service.Type),
		Percentage:         v.Percentage,
		Completed:          v.Service.Completed,
		CompletionEligible: v.CompletionEligible,
	}
}

// stageKeys lists the order's progress units in pipeline order followed by
// any other recorded keys, such as per-service retifica timers.
func stageKeys(o entities.Order) []entities.StageKey {
	units := progress.StageUnits(o)
	seen := lo.SliceToMap(units, func(k entities.StageKey) (string, bool) { return k.String(), true })

	extra := make([]entities.StageKey, 0)
	for raw := range o.Stages {
		if seen[raw] {
			continue
		}
		k, err := entities.ParseStageKey(raw)
		if err != nil {
			continue
		}
		extra = append(extra, k)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].String() < extra[j].String() })
	return append(units, extra...)
}

func percent(fraction float64) int {
	return int(math.Round(100 * fraction))
}
