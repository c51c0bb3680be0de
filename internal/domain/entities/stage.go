package entities

import (
	"fmt"
	"strings"
	"time"
)

// Stage is one of the fixed steps of the rebuild pipeline.
type Stage string

const (
	StageLavagem         Stage = "lavagem"
	StageInspecaoInicial Stage = "inspecao_inicial"
	StageRetifica        Stage = "retifica"
	StageMontagem        Stage = "montagem"
	StageDinamometro     Stage = "dinamometro"
	StageInspecaoFinal   Stage = "inspecao_final"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{
	StageLavagem,
	StageInspecaoInicial,
	StageRetifica,
	StageMontagem,
	StageDinamometro,
	StageInspecaoFinal,
}

func ParseStage(s string) (Stage, bool) {
	for _, st := range Stages {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsInspection reports whether the stage is tracked per service type.
func (s Stage) IsInspection() bool {
	return s == StageInspecaoInicial || s == StageInspecaoFinal
}

// AlwaysApplicable is true for stages that apply regardless of the order's services.
func (s Stage) AlwaysApplicable() bool {
	return s == StageLavagem || s.IsInspection()
}

// ServiceTypes returns the service types that map to the stage.
func (s Stage) ServiceTypes() []ServiceType {
	out := make([]ServiceType, 0)
	for _, t := range ServiceTypes {
		if t.Stage() == s {
			out = append(out, t)
		}
	}
	return out
}

// StageKey addresses one tracked activity of an order. Inspection stages
// always carry a ServiceType; retifica may carry one to time a single
// machining service.
type StageKey struct {
	Stage       Stage
	ServiceType ServiceType
}

func (k StageKey) String() string {
	if k.ServiceType == "" {
		return string(k.Stage)
	}
	return string(k.Stage) + ":" + string(k.ServiceType)
}

// Validate checks the stage/service-type combination.
func (k StageKey) Validate() error {
	if _, ok := ParseStage(string(k.Stage)); !ok {
		return fmt.Errorf("unknown stage %q", k.Stage)
	}
	if k.ServiceType != "" && !k.ServiceType.Valid() {
		return fmt.Errorf("unknown service type %q", k.ServiceType)
	}
	if k.Stage.IsInspection() && k.ServiceType == "" {
		return fmt.Errorf("stage %s requires a service type", k.Stage)
	}
	if !k.Stage.IsInspection() && k.ServiceType != "" && k.ServiceType.Stage() != k.Stage {
		return fmt.Errorf("service type %s does not belong to stage %s", k.ServiceType, k.Stage)
	}
	return nil
}

func ParseStageKey(s string) (StageKey, error) {
	stage, typ, _ := strings.Cut(s, ":")
	k := StageKey{Stage: Stage(stage), ServiceType: ServiceType(typ)}
	if err := k.Validate(); err != nil {
		return StageKey{}, err
	}
	return k, nil
}

// Pause is one interruption of a timed activity; End is nil while open.
type Pause struct {
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// StageProgress is the persisted state of one StageKey.
type StageProgress struct {
	Completed       bool        `json:"completed"`
	StartedAt       *time.Time  `json:"started_at,omitempty"`
	FinishedAt      *time.Time  `json:"finished_at,omitempty"`
	ResponsibleID   string      `json:"responsible_id,omitempty"`
	ResponsibleName string      `json:"responsible_name,omitempty"`
	Pauses          []Pause     `json:"pauses,omitempty"`
	ServiceType     ServiceType `json:"service_type,omitempty"`
}

type StageState string

const (
	StageStateNotStarted StageState = "not_started"
	StageStateInProgress StageState = "in_progress"
	StageStateCompleted  StageState = "completed"
)

func (sp StageProgress) State() StageState {
	switch {
	case sp.Completed:
		return StageStateCompleted
	case sp.StartedAt != nil:
		return StageStateInProgress
	default:
		return StageStateNotStarted
	}
}

// OpenPause returns the index of the open pause, or -1.
func (sp StageProgress) OpenPause() int {
	if n := len(sp.Pauses); n > 0 && sp.Pauses[n-1].End == nil {
		return n - 1
	}
	return -1
}
