package interfaces

import (
	"context"

	"retifica_os/internal/domain/entities"
)

// IEmployeeRepository is the roster service.
type IEmployeeRepository interface {
	List(ctx context.Context) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
}

// IEmployeeBusyRepository stores "employee in service" markers, one per employee.
//
// PutIfAvailable writes the marker unless the employee is occupied by a
// different order/slot, in which case the occupying marker is returned with
// ok=false. DeleteIfSlot removes the marker only when it still points at
// the given order/slot.
type IEmployeeBusyRepository interface {
	Get(ctx context.Context, employeeID string) (entities.EmployeeBusy, error)
	List(ctx context.Context) ([]entities.EmployeeBusy, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.EmployeeBusy, error)
	PutIfAvailable(ctx context.Context, b entities.EmployeeBusy) (existing entities.EmployeeBusy, ok bool, err error)
	DeleteIfSlot(ctx context.Context, employeeID, orderID string, slot entities.StageKey) (bool, error)
}
