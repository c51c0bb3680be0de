package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase/interfaces"
	mock_interfaces "retifica_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

var (
	adminSess = entities.Session{UserID: "adm", Name: "Ana", Role: entities.RoleAdmin}
	techSess  = entities.Session{UserID: "e1", Name: "Edu", Role: entities.RoleTechnician, Specialties: []entities.ServiceType{entities.ServiceBloco}}
	viewSess  = entities.Session{UserID: "v1", Name: "Vera", Role: entities.RoleViewer}
)

var roster = map[string]entities.Employee{
	"e1": {ID: "e1", Name: "Edu", Role: entities.RoleTechnician, Active: true, Specialties: []entities.ServiceType{entities.ServiceBloco}},
	"e2": {ID: "e2", Name: "Bia", Role: entities.RoleTechnician, Active: true},
	"ex": {ID: "ex", Name: "Xavier", Role: entities.RoleTechnician, Active: true},
	"e9": {ID: "e9", Name: "Old", Role: entities.RoleTechnician},
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// memBusy keeps one marker per employee with the conditional semantics of
// the DynamoDB repository.
type memBusy struct {
	mu      sync.Mutex
	markers map[string]entities.EmployeeBusy
}

var _ interfaces.IEmployeeBusyRepository = (*memBusy)(nil)

func newMemBusy() *memBusy {
	return &memBusy{markers: make(map[string]entities.EmployeeBusy)}
}

func (m *memBusy) Get(_ context.Context, employeeID string) (entities.EmployeeBusy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.markers[employeeID], nil
}

func (m *memBusy) List(_ context.Context) ([]entities.EmployeeBusy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.EmployeeBusy, 0, len(m.markers))
	for _, b := range m.markers {
		out = append(out, b)
	}
	return out, nil
}

func (m *memBusy) ListByOrderID(_ context.Context, orderID string) ([]entities.EmployeeBusy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.EmployeeBusy
	for _, b := range m.markers {
		if b.OrderID == orderID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBusy) PutIfAvailable(_ context.Context, b entities.EmployeeBusy) (entities.EmployeeBusy, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.markers[b.EmployeeID]
	if ok && !existing.SameSlot(b.OrderID, b.Slot()) {
		return existing, false, nil
	}
	if !ok {
		m.markers[b.EmployeeID] = b
	}
	return existing, true, nil
}

func (m *memBusy) DeleteIfSlot(_ context.Context, employeeID, orderID string, slot entities.StageKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.markers[employeeID]
	if !ok || !existing.SameSlot(orderID, slot) {
		return false, nil
	}
	delete(m.markers, employeeID)
	return true, nil
}

// fixture wires the use cases over a map-backed order mock.
type fixture struct {
	ctrl      *gomock.Controller
	orders    *mock_interfaces.MockIOrderRepository
	employees *mock_interfaces.MockIEmployeeRepository
	publisher *mock_interfaces.MockIProgressPublisher
	busy      *memBusy
	clock     *testClock

	mu      sync.Mutex
	store   map[string]entities.Order
	updates int

	persister  *ProgressPersister
	assignment *AssignmentUseCase
	stages     *StageUseCase
	services   *ServiceUseCase
}

func newFixture(t *testing.T, orders ...entities.Order) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		employees: mock_interfaces.NewMockIEmployeeRepository(ctrl),
		publisher: mock_interfaces.NewMockIProgressPublisher(ctrl),
		busy:      newMemBusy(),
		clock:     &testClock{now: t0},
		store:     make(map[string]entities.Order),
	}
	for _, o := range orders {
		f.store[o.ID] = cloneOrder(o)
	}

	f.orders.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.Order, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return cloneOrder(f.store[id]), nil
		},
	).AnyTimes()
	f.orders.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, upd interfaces.OrderUpdate) (entities.Order, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			o, ok := f.store[id]
			if !ok {
				return entities.Order{}, nil
			}
			o = applyUpdate(o, upd)
			f.store[id] = o
			f.updates++
			return cloneOrder(o), nil
		},
	).AnyTimes()
	f.employees.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.Employee, error) {
			return roster[id], nil
		},
	).AnyTimes()
	f.publisher.EXPECT().PublishOrderProgress(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.persister = NewProgressPersister(f.orders, f.publisher, f.clock.Now)
	f.assignment = NewAssignmentUseCase(f.persister, f.employees, f.busy, time.Hour)
	f.stages = NewStageUseCase(f.persister, f.assignment)
	f.services = NewServiceUseCase(f.persister, f.assignment)
	return f
}

func (f *fixture) order(id string) entities.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneOrder(f.store[id])
}

func (f *fixture) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates
}

func applyUpdate(o entities.Order, upd interfaces.OrderUpdate) entities.Order {
	o = cloneOrder(o)
	for k, sp := range upd.Stages {
		o.Stages[k] = sp
	}
	if upd.Services != nil {
		o.Services = upd.Services
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	o.Progress = upd.Progress
	o.EstimatedHours = upd.EstimatedHours
	o.TotalWorkedMs = upd.TotalWorkedMs
	o.UpdatedAt = upd.UpdatedAt
	return o
}

func blocoOrder(id string, status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:     id,
		Name:   "Motor AP 1.8",
		Status: status,
		Services: []entities.Service{{
			Type: entities.ServiceBloco,
			Subtasks: []entities.SubAtividade{
				{ID: "s1", Name: "Medição", Selected: true, EstimatedHours: 1},
				{ID: "s2", Name: "Brunimento", Selected: true, EstimatedHours: 2},
				{ID: "s3", Name: "Plaina", Selected: true, EstimatedHours: 1},
			},
		}},
		Stages: map[string]entities.StageProgress{},
	}
}
