package usecase

import (
	"context"
	"errors"
	"testing"

	"retifica_os/internal/domain/entities"
	mock_interfaces "retifica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()
	in := CreateOrderInput{
		ID:         " os-10 ",
		Name:       "Motor AP",
		CustomerID: "c-1",
		Services:   []NewServiceInput{{Type: entities.ServiceBloco, Description: "retificar bloco"}},
	}

	t.Run("technician forbidden", func(t *testing.T) {
		uc := NewOrderUseCase(NewProgressPersister(nil, nil, nil), nil, nil, nil)
		if _, err := uc.Create(ctx, techSess, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewOrderUseCase(NewProgressPersister(nil, nil, nil), nil, nil, nil)
		bad := in
		bad.ID = " "
		if _, err := uc.Create(ctx, adminSess, bad); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
		bad = in
		bad.Priority = "altissima"
		if _, err := uc.Create(ctx, adminSess, bad); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
		bad = in
		bad.Services = []NewServiceInput{{Type: entities.ServiceBloco}, {Type: entities.ServiceBloco}}
		if _, err := uc.Create(ctx, adminSess, bad); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder for duplicate services, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "os-10").Return(entities.Order{ID: "os-10"}, nil)

		uc := NewOrderUseCase(NewProgressPersister(repo, nil, nil), repo, nil, nil)
		if _, err := uc.Create(ctx, adminSess, in); !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "os-10").Return(entities.Order{}, nil)

		uc := NewOrderUseCase(NewProgressPersister(repo, nil, nil), repo, nil, nil)
		bad := in
		bad.Services = []NewServiceInput{{Type: "pintura"}}
		if _, err := uc.Create(ctx, adminSess, bad); !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("seeds subtasks from presets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		presets := mock_interfaces.NewMockISubtaskPresetRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "os-10").Return(entities.Order{}, nil)
		presets.EXPECT().ListByServiceType(gomock.Any(), entities.ServiceBloco).Return([]entities.SubtaskPreset{
			{ID: "p1", ServiceType: entities.ServiceBloco, Name: "Medição", EstimatedHours: 1, Position: 1},
			{ID: "p2", ServiceType: entities.ServiceBloco, Name: "Brunimento", EstimatedHours: 2.5, Position: 2},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "os-10" || o.Status != entities.OrderStatusOrcamento || o.Priority != entities.PriorityMedia {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Stages == nil || len(o.Stages) != 0 || o.Progress != 0 {
					t.Fatalf("expected empty progress: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.OpenedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		uc := NewOrderUseCase(NewProgressPersister(repo, nil, nil), repo, presets, nil)
		o, err := uc.Create(ctx, adminSess, in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		svc := o.Service(entities.ServiceBloco)
		if svc == nil || svc.Description != "retificar bloco" || len(svc.Subtasks) != 2 {
			t.Fatalf("unexpected service: %+v", svc)
		}
		for _, st := range svc.Subtasks {
			if st.ID == "" || !st.Selected || st.Completed {
				t.Fatalf("unexpected seeded subtask: %+v", st)
			}
		}
		if svc.Subtasks[0].ID == svc.Subtasks[1].ID {
			t.Fatalf("seeded subtasks need distinct ids")
		}
		if o.EstimatedHours != 3.5 {
			t.Fatalf("expected 3.5h, got %v", o.EstimatedHours)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blocoOrder("os-1", entities.OrderStatusOrcamento))
	uc := NewOrderUseCase(f.persister, f.orders, nil, f.busy)

	if _, err := uc.UpdateStatus(ctx, adminSess, "os-1", "pronto"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.UpdateStatus(ctx, techSess, "os-1", entities.OrderStatusFabricacao); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	o, err := uc.UpdateStatus(ctx, adminSess, "os-1", entities.OrderStatusFabricacao)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if o.Status != entities.OrderStatusFabricacao {
		t.Fatalf("unexpected status %q", o.Status)
	}

	if _, err := f.stages.Start(ctx, techSess, "os-1", retifica, ""); err != nil {
		t.Fatalf("retifica should start once in production: %v", err)
	}
}

func TestOrderUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, blocoOrder("os-1", entities.OrderStatusFabricacao))
	f.busy.markers["e1"] = entities.EmployeeBusy{EmployeeID: "e1", OrderID: "os-1", Stage: entities.StageLavagem}
	f.busy.markers["e2"] = entities.EmployeeBusy{EmployeeID: "e2", OrderID: "os-2", Stage: entities.StageLavagem}
	f.orders.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)
	uc := NewOrderUseCase(f.persister, f.orders, nil, f.busy)

	if err := uc.Delete(ctx, techSess, "os-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.Delete(ctx, adminSess, "os-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m, _ := f.busy.Get(ctx, "e1"); m.EmployeeID != "" {
		t.Fatalf("marker on the deleted order should be cleared")
	}
	if m, _ := f.busy.Get(ctx, "e2"); m.EmployeeID != "e2" {
		t.Fatalf("marker on another order must stay")
	}
}

func TestOrderUseCase_Lookups(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	presets := mock_interfaces.NewMockISubtaskPresetRepository(ctrl)
	uc := NewOrderUseCase(NewProgressPersister(repo, nil, nil), repo, presets, nil)

	if _, err := uc.List(ctx, "pronto"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	repo.EXPECT().List(gomock.Any(), entities.OrderStatusFabricacao).Return([]entities.Order{{ID: "os-1"}}, nil)
	if got, err := uc.List(ctx, entities.OrderStatusFabricacao); err != nil || len(got) != 1 {
		t.Fatalf("list: %v %v", got, err)
	}

	if _, err := uc.ListPresets(ctx, "pintura"); !errors.Is(err, ErrInvalidServiceType) {
		t.Fatalf("expected ErrInvalidServiceType, got %v", err)
	}

	reasons := uc.PauseReasons()
	if len(reasons) == 0 || reasons[0] != "Banheiro" {
		t.Fatalf("unexpected pause reasons %v", reasons)
	}
	reasons[0] = "changed"
	if uc.PauseReasons()[0] != "Banheiro" {
		t.Fatalf("pause reasons must be a copy")
	}
}
