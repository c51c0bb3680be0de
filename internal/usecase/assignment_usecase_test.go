package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"retifica_os/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func montagemOrder(id string) entities.Order {
	return entities.Order{
		ID:       id,
		Name:     "Motor MWM",
		Status:   entities.OrderStatusFabricacao,
		Services: []entities.Service{{Type: entities.ServiceMontagem}},
		Stages:   map[string]entities.StageProgress{},
	}
}

func TestAssignmentUseCase_BusyEmployeeRejected(t *testing.T) {
	ctx := context.Background()
	a := blocoOrder("os-a", entities.OrderStatusFabricacao)
	a.Stages["lavagem"] = entities.StageProgress{StartedAt: &t0, ResponsibleID: "e2", ResponsibleName: "Bia"}
	f := newFixture(t, a, montagemOrder("os-b"))
	f.busy.markers["e2"] = entities.EmployeeBusy{EmployeeID: "e2", OrderID: "os-a", Stage: entities.StageLavagem, Since: t0}
	montagem := entities.StageKey{Stage: entities.StageMontagem}

	_, err := f.assignment.Assign(ctx, adminSess, "os-b", StageTarget(montagem), "e2")
	if !errors.Is(err, ErrEmployeeBusy) {
		t.Fatalf("expected ErrEmployeeBusy, got %v", err)
	}
	if !strings.Contains(err.Error(), "os-a") {
		t.Fatalf("message should name the occupying order, got %q", err.Error())
	}
	if sp := f.order("os-b").StageProgress(montagem); sp.ResponsibleID != "" {
		t.Fatalf("os-b must be unchanged, got %+v", sp)
	}

	t.Run("same employee elsewhere on the same order", func(t *testing.T) {
		_, err := f.stages.Start(ctx, adminSess, "os-a", retifica, "e2")
		if !errors.Is(err, ErrEmployeeBusy) {
			t.Fatalf("expected ErrEmployeeBusy, got %v", err)
		}
	})

	if _, err := f.assignment.Remove(ctx, adminSess, "os-a", StageTarget(lavagem)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if sp := f.order("os-a").StageProgress(lavagem); sp.ResponsibleID != "" || sp.ResponsibleName != "" {
		t.Fatalf("responsible should be cleared, got %+v", sp)
	}

	o, err := f.assignment.Assign(ctx, adminSess, "os-b", StageTarget(montagem), "e2")
	if err != nil {
		t.Fatalf("assign after release: %v", err)
	}
	if sp := o.StageProgress(montagem); sp.ResponsibleID != "e2" || sp.ResponsibleName != "Bia" {
		t.Fatalf("unexpected progress: %+v", sp)
	}
	if m, _ := f.busy.Get(ctx, "e2"); !m.SameSlot("os-b", montagem) {
		t.Fatalf("expected e2 busy on os-b/montagem, got %+v", m)
	}
}

func TestAssignmentUseCase_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("reassign frees the previous employee", func(t *testing.T) {
		f := newFixture(t, montagemOrder("os-1"))
		if _, err := f.assignment.Assign(ctx, adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e1"); err != nil {
			t.Fatalf("assign e1: %v", err)
		}
		o, err := f.assignment.Assign(ctx, adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e2")
		if err != nil {
			t.Fatalf("assign e2: %v", err)
		}
		if svc := o.Service(entities.ServiceMontagem); svc.ResponsibleID != "e2" {
			t.Fatalf("unexpected service: %+v", svc)
		}
		if m, _ := f.busy.Get(ctx, "e1"); m.EmployeeID != "" {
			t.Fatalf("e1 should be free, got %+v", m)
		}
	})

	t.Run("same responsible is a no-op", func(t *testing.T) {
		f := newFixture(t, montagemOrder("os-1"))
		if _, err := f.assignment.Assign(ctx, adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e1"); err != nil {
			t.Fatalf("assign: %v", err)
		}
		if _, err := f.assignment.Assign(ctx, adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e1"); err != nil {
			t.Fatalf("assign again: %v", err)
		}
		if f.writes() != 1 {
			t.Fatalf("expected a single write, got %d", f.writes())
		}
	})

	t.Run("completed target is credited without a marker", func(t *testing.T) {
		o := montagemOrder("os-1")
		o.Services[0].Completed = true
		f := newFixture(t, o)
		if _, err := f.assignment.Assign(ctx, adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e1"); err != nil {
			t.Fatalf("assign: %v", err)
		}
		if m, _ := f.busy.Get(ctx, "e1"); m.EmployeeID != "" {
			t.Fatalf("no marker expected, got %+v", m)
		}
	})

	t.Run("blank employee", func(t *testing.T) {
		f := newFixture(t, montagemOrder("os-1"))
		_, err := f.assignment.Assign(ctx, adminSess, "os-1", StageTarget(lavagem), " ")
		if !errors.Is(err, ErrResponsibleRequired) {
			t.Fatalf("expected ErrResponsibleRequired, got %v", err)
		}
	})

	t.Run("technician assigns only self", func(t *testing.T) {
		f := newFixture(t, montagemOrder("os-1"))
		if _, err := f.assignment.Assign(ctx, techSess, "os-1", StageTarget(lavagem), "e2"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := f.assignment.Assign(ctx, techSess, "os-1", StageTarget(lavagem), "e1"); err != nil {
			t.Fatalf("self assign: %v", err)
		}
	})

	t.Run("technician cannot remove someone else", func(t *testing.T) {
		o := montagemOrder("os-1")
		o.Stages["lavagem"] = entities.StageProgress{ResponsibleID: "e2"}
		f := newFixture(t, o)
		if _, err := f.assignment.Remove(ctx, techSess, "os-1", StageTarget(lavagem)); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestAssignmentUseCase_Debounce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, montagemOrder("os-1"))

	f.assignment.AssignDebounced(adminSess, "os-1", StageTarget(lavagem), "e1")
	f.assignment.AssignDebounced(adminSess, "os-1", StageTarget(lavagem), "ex")
	f.assignment.AssignDebounced(adminSess, "os-1", ServiceTarget(entities.ServiceMontagem), "e2")
	if f.writes() != 0 {
		t.Fatalf("nothing should be saved before the window closes")
	}

	if err := f.assignment.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if f.writes() != 2 {
		t.Fatalf("expected one write per target, got %d", f.writes())
	}
	o := f.order("os-1")
	if sp := o.StageProgress(lavagem); sp.ResponsibleID != "ex" {
		t.Fatalf("latest pick should win, got %q", sp.ResponsibleID)
	}
	if svc := o.Service(entities.ServiceMontagem); svc.ResponsibleID != "e2" {
		t.Fatalf("unexpected service responsible %q", svc.ResponsibleID)
	}
	if m, _ := f.busy.Get(ctx, "e1"); m.EmployeeID != "" {
		t.Fatalf("replaced pick must not leave a marker, got %+v", m)
	}

	if err := f.assignment.Flush(ctx); err != nil || f.writes() != 2 {
		t.Fatalf("second flush should be empty: err=%v writes=%d", err, f.writes())
	}
}

func TestAssignmentUseCase_DebouncedSaveRejectedIsReported(t *testing.T) {
	f := newFixture(t, montagemOrder("os-1"))
	target := StageTarget(lavagem)
	key := "os-1|" + target.String()

	f.assignment.AssignDebounced(adminSess, "os-1", target, "e2")
	f.assignment.mu.Lock()
	p := f.assignment.pending[key]
	f.assignment.mu.Unlock()
	p.timer.Stop()

	release, err := f.persister.guard.acquire("os-1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	f.assignment.runPending(key, p)
	release()

	if f.writes() != 0 {
		t.Fatalf("rejected save must not write")
	}
	o := f.order("os-1")
	if sp := o.StageProgress(lavagem); sp.ResponsibleID != "" {
		t.Fatalf("responsible must be unchanged, got %q", sp.ResponsibleID)
	}

	failures := f.assignment.AutoSaveFailures("os-1")
	if len(failures) != 1 {
		t.Fatalf("expected one failure, got %+v", failures)
	}
	if got := failures[0]; got.Target != target.String() || got.EmployeeID != "e2" || got.Message != ErrSaveInProgress.Error() || !got.At.Equal(t0) {
		t.Fatalf("unexpected failure %+v", got)
	}
	if again := f.assignment.AutoSaveFailures("os-1"); len(again) != 0 {
		t.Fatalf("failures should be reported once, got %+v", again)
	}
}

func TestAssignmentUseCase_NewPickClearsReportedFailure(t *testing.T) {
	f := newFixture(t, montagemOrder("os-1"))
	target := StageTarget(lavagem)
	f.assignment.recordFailure(&pendingAssign{orderID: "os-1", target: target, employeeID: "e2"}, ErrSaveInProgress)

	f.assignment.AssignDebounced(adminSess, "os-1", target, "ex")
	if failures := f.assignment.AutoSaveFailures("os-1"); len(failures) != 0 {
		t.Fatalf("stale failure should be dropped, got %+v", failures)
	}
	if err := f.assignment.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
}

func TestAssignmentUseCase_ListEmployees(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.employees.EXPECT().List(gomock.Any()).Return([]entities.Employee{roster["e1"], roster["e2"]}, nil)
	f.busy.markers["e2"] = entities.EmployeeBusy{EmployeeID: "e2", OrderID: "os-a", Stage: entities.StageLavagem}

	got, err := f.assignment.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(got))
	}
	if got[0].Availability != entities.AvailabilityAvailable || got[0].BusyWith != nil {
		t.Fatalf("e1 should be available: %+v", got[0])
	}
	if got[1].Availability != entities.AvailabilityBusy || got[1].BusyWith.OrderID != "os-a" {
		t.Fatalf("e2 should be busy on os-a: %+v", got[1])
	}

	t.Run("roster error", func(t *testing.T) {
		f := newFixture(t)
		f.employees.EXPECT().List(gomock.Any()).Return(nil, errors.New("roster down"))
		if _, err := f.assignment.ListEmployees(ctx); err == nil || err.Error() != "roster down" {
			t.Fatalf("expected roster error, got %v", err)
		}
	})
}
