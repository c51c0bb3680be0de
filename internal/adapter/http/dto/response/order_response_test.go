package response

import (
	"testing"
	"time"

	"retifica_os/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	started := t0
	o := entities.Order{
		ID:       "os-1",
		Name:     "Motor AP",
		Priority: entities.PriorityAlta,
		Status:   entities.OrderStatusFabricacao,
		Progress: 0.25,
		Services: []entities.Service{{
			Type:          entities.ServiceBloco,
			ResponsibleID: "e1",
			Subtasks: []entities.SubAtividade{
				{ID: "s1", Selected: true, Completed: true},
				{ID: "s2", Selected: true},
				{ID: "s3"},
			},
		}},
		Stages: map[string]entities.StageProgress{
			"lavagem":        {StartedAt: &started},
			"retifica:bloco": {StartedAt: &started},
		},
	}

	resp := FromOrder(o, t0.Add(15*time.Minute))

	if resp.ProgressPercent != 25 {
		t.Fatalf("expected 25%%, got %d", resp.ProgressPercent)
	}
	if len(resp.Services) != 1 || resp.Services[0].Percentage != 50 || resp.Services[0].CompletionEligible {
		t.Fatalf("unexpected service: %+v", resp.Services)
	}
	keys := make([]string, 0, len(resp.Stages))
	for _, s := range resp.Stages {
		keys = append(keys, s.Key)
	}
	want := []string{"lavagem", "inspecao_inicial:bloco", "retifica", "inspecao_final:bloco", "retifica:bloco"}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}

	lavagem := resp.Stages[0]
	if lavagem.State != string(entities.StageStateInProgress) || lavagem.Timer.State != "running" {
		t.Fatalf("unexpected lavagem: %+v", lavagem)
	}
	if lavagem.Timer.Display != "00:15:00" || lavagem.Timer.ElapsedMs != (15*time.Minute).Milliseconds() {
		t.Fatalf("unexpected timer: %+v", lavagem.Timer)
	}
	if resp.Stages[2].Percentage != 50 {
		t.Fatalf("expected retifica at 50, got %d", resp.Stages[2].Percentage)
	}
}

func TestFromOrderSummary(t *testing.T) {
	o := entities.Order{
		ID:       "os-2",
		Progress: 2.0 / 3.0,
		Services: []entities.Service{{Type: entities.ServiceMontagem}, {Type: entities.ServiceDinamometro}},
	}
	s := FromOrderSummary(o)
	if s.ProgressPercent != 67 || len(s.Services) != 2 || s.Services[1] != "dinamometro" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestFromEmployeeStatus(t *testing.T) {
	since := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s := entities.EmployeeStatus{
		Employee:     entities.Employee{ID: "e1", Name: "Edu", Role: entities.RoleTechnician, Specialties: []entities.ServiceType{entities.ServiceBloco}},
		Availability: entities.AvailabilityBusy,
		BusyWith:     &entities.EmployeeBusy{EmployeeID: "e1", OrderID: "os-a", Stage: entities.StageMontagem, Since: since},
	}
	resp := FromEmployeeStatus(s)
	if resp.Availability != "busy" || resp.BusyWith == nil || resp.BusyWith.OrderID != "os-a" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Specialties) != 1 || resp.Specialties[0] != "bloco" {
		t.Fatalf("unexpected specialties: %v", resp.Specialties)
	}
}
