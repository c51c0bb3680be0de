package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"retifica_os/internal/domain/access"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"
)

const debouncedSaveTimeout = 10 * time.Second

// Target is what a responsible party is credited for: a stage key, or the
// service of Key.ServiceType when Service is true.
type Target struct {
	Key     entities.StageKey
	Service bool
}

func StageTarget(key entities.StageKey) Target {
	return Target{Key: key}
}

func ServiceTarget(t entities.ServiceType) Target {
	return Target{Key: entities.StageKey{Stage: t.Stage(), ServiceType: t}, Service: true}
}

func (t Target) String() string {
	if t.Service {
		return "service:" + string(t.Key.ServiceType)
	}
	return "stage:" + t.Key.String()
}

// IAssignmentUseCase resolves and persists who is credited for a stage or
// service and keeps the employee-in-service markers in sync.
type IAssignmentUseCase interface {
	Assign(ctx context.Context, sess entities.Session, orderID string, target Target, employeeID string) (entities.Order, error)
	AssignDebounced(sess entities.Session, orderID string, target Target, employeeID string)
	Flush(ctx context.Context) error
	Remove(ctx context.Context, sess entities.Session, orderID string, target Target) (entities.Order, error)
	ListEmployees(ctx context.Context) ([]entities.EmployeeStatus, error)
	AutoSaveFailures(orderID string) []AutoSaveFailure
}

// AutoSaveFailure is a debounced assignment that could not be persisted.
type AutoSaveFailure struct {
	Target     string
	EmployeeID string
	Message    string
	At         time.Time
}

type pendingAssign struct {
	sess       entities.Session
	orderID    string
	target     Target
	employeeID string
	timer      *time.Timer
}

type AssignmentUseCase struct {
	persister *ProgressPersister
	employees interfaces.IEmployeeRepository
	busy      interfaces.IEmployeeBusyRepository
	debounce  time.Duration

	mu      sync.Mutex
	pending map[string]*pendingAssign
	failed  map[string][]AutoSaveFailure
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(persister *ProgressPersister, employees interfaces.IEmployeeRepository, busy interfaces.IEmployeeBusyRepository, debounce time.Duration) *AssignmentUseCase {
	return &AssignmentUseCase{
		persister: persister,
		employees: employees,
		busy:      busy,
		debounce:  debounce,
		pending:   make(map[string]*pendingAssign),
		failed:    make(map[string][]AutoSaveFailure),
	}
}

// resolveResponsible picks the employee credited for an action. An explicit
// pick wins (elevated users may pick anyone, technicians only themselves);
// otherwise the current responsible is kept; otherwise technicians default
// to themselves and elevated users must pick.
func (u *AssignmentUseCase) resolveResponsible(ctx context.Context, sess entities.Session, requestedID, currentID, currentName string) (entities.Employee, error) {
	if !access.CanOperate(sess) {
		return entities.Employee{}, ErrForbidden
	}

	requestedID = strings.TrimSpace(requestedID)
	if requestedID != "" {
		if !access.IsElevated(sess) && requestedID != sess.UserID {
			return entities.Employee{}, ErrForbidden
		}
		emp, err := u.employees.GetByID(ctx, requestedID)
		if err != nil {
			return entities.Employee{}, err
		}
		if emp.ID == "" || !emp.Active {
			return entities.Employee{}, reject(ErrResponsibleNotFound)
		}
		return emp, nil
	}

	if currentID != "" {
		return entities.Employee{ID: currentID, Name: currentName, Active: true}, nil
	}
	if access.IsElevated(sess) {
		return entities.Employee{}, reject(ErrResponsibleRequired)
	}
	return entities.Employee{
		ID:          sess.UserID,
		Name:        sess.Name,
		Role:        sess.Role,
		Specialties: sess.Specialties,
		Active:      true,
	}, nil
}

// markBusy occupies emp with orderID/key. A marker created here is removed
// again if the surrounding write does not go through.
func (u *AssignmentUseCase) markBusy(ctx context.Context, emp entities.Employee, orderID string, key entities.StageKey, now time.Time, c *change) error {
	marker := entities.EmployeeBusy{
		EmployeeID:  emp.ID,
		OrderID:     orderID,
		Stage:       key.Stage,
		ServiceType: key.ServiceType,
		Since:       now,
	}
	existing, ok, err := u.busy.PutIfAvailable(ctx, marker)
	if err != nil {
		return err
	}
	if !ok {
		name := emp.Name
		if name == "" {
			name = emp.ID
		}
		return rejectf(ErrEmployeeBusy, "%s is busy on order %s (%s)", name, existing.OrderID, existing.Slot())
	}
	if existing.EmployeeID == "" {
		c.onUndo(func(ctx context.Context) { u.clearBusy(ctx, emp.ID, orderID, key) })
	}
	return nil
}

func (u *AssignmentUseCase) clearBusy(ctx context.Context, employeeID, orderID string, key entities.StageKey) {
	if employeeID == "" {
		return
	}
	if _, err := u.busy.DeleteIfSlot(ctx, employeeID, orderID, key); err != nil {
		logger.L().Error("[assignment][usecase] clear busy failed",
			logger.String("employee_id", employeeID), logger.String("order_id", orderID), logger.String("slot", key.String()), logger.ErrorF(err))
	}
}

// clearBusyOnCommit frees employeeID from orderID/key once the write succeeds.
func (u *AssignmentUseCase) clearBusyOnCommit(c *change, employeeID, orderID string, key entities.StageKey) {
	if employeeID == "" {
		return
	}
	c.onCommit(func(ctx context.Context) { u.clearBusy(ctx, employeeID, orderID, key) })
}

func (u *AssignmentUseCase) Assign(ctx context.Context, sess entities.Session, orderID string, target Target, employeeID string) (entities.Order, error) {
	if strings.TrimSpace(employeeID) == "" {
		return entities.Order{}, reject(ErrResponsibleRequired)
	}
	return u.persister.Mutate(ctx, orderID, "assign", func(ctx context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = target.String(), sess.UserID
		if err := validateTarget(o, target); err != nil {
			return false, err
		}
		emp, err := u.resolveResponsible(ctx, sess, employeeID, "", "")
		if err != nil {
			return false, err
		}
		return u.applyAssign(ctx, o, target, emp, now, c)
	})
}

// applyAssign records emp on target and, unless the target is already
// completed, marks emp busy there and frees the previous responsible.
func (u *AssignmentUseCase) applyAssign(ctx context.Context, o *entities.Order, target Target, emp entities.Employee, now time.Time, c *change) (bool, error) {
	var previous string
	var completed bool

	if target.Service {
		svc := o.Service(target.Key.ServiceType)
		previous, completed = svc.ResponsibleID, svc.Completed
		if previous == emp.ID && svc.ResponsibleName == emp.Name {
			return false, nil
		}
		svc.ResponsibleID, svc.ResponsibleName = emp.ID, emp.Name
	} else {
		sp := o.StageProgress(target.Key)
		previous, completed = sp.ResponsibleID, sp.Completed
		if previous == emp.ID && sp.ResponsibleName == emp.Name {
			return false, nil
		}
		sp.ResponsibleID, sp.ResponsibleName = emp.ID, emp.Name
		if target.Key.Stage.IsInspection() {
			sp.ServiceType = target.Key.ServiceType
		}
		o.SetStageProgress(target.Key, sp)
	}

	if completed {
		return true, nil
	}
	if err := u.markBusy(ctx, emp, o.ID, target.Key, now, c); err != nil {
		return false, err
	}
	if previous != emp.ID {
		u.clearBusyOnCommit(c, previous, o.ID, target.Key)
	}
	return true, nil
}

func (u *AssignmentUseCase) Remove(ctx context.Context, sess entities.Session, orderID string, target Target) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "remove_responsible", func(ctx context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = target.String(), sess.UserID
		if !access.CanOperate(sess) {
			return false, ErrForbidden
		}
		if err := validateTarget(o, target); err != nil {
			return false, err
		}

		var previous string
		if target.Service {
			svc := o.Service(target.Key.ServiceType)
			previous = svc.ResponsibleID
			svc.ResponsibleID, svc.ResponsibleName = "", ""
		} else {
			sp := o.StageProgress(target.Key)
			previous = sp.ResponsibleID
			sp.ResponsibleID, sp.ResponsibleName = "", ""
			o.SetStageProgress(target.Key, sp)
		}
		if previous == "" {
			return false, nil
		}
		if !access.IsElevated(sess) && previous != sess.UserID {
			return false, ErrForbidden
		}
		u.clearBusyOnCommit(c, previous, o.ID, target.Key)
		return true, nil
	})
}

// AssignDebounced schedules Assign after the debounce window, replacing a
// pending assignment for the same order and target. A save that fails is
// not retried; it is kept for AutoSaveFailures.
func (u *AssignmentUseCase) AssignDebounced(sess entities.Session, orderID string, target Target, employeeID string) {
	key := orderID + "|" + target.String()
	p := &pendingAssign{sess: sess, orderID: orderID, target: target, employeeID: employeeID}

	u.mu.Lock()
	defer u.mu.Unlock()
	if prev, ok := u.pending[key]; ok {
		prev.timer.Stop()
	}
	u.dropFailures(orderID, target.String())
	u.pending[key] = p
	p.timer = time.AfterFunc(u.debounce, func() { u.runPending(key, p) })
}

func (u *AssignmentUseCase) runPending(key string, p *pendingAssign) {
	u.mu.Lock()
	if u.pending[key] != p {
		u.mu.Unlock()
		return
	}
	delete(u.pending, key)
	u.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), debouncedSaveTimeout)
	defer cancel()
	if err := u.save(ctx, p); err != nil {
		logger.L().Warn("[assignment][usecase] auto-save failed",
			logger.String("order_id", p.orderID), logger.String("target", p.target.String()), logger.ErrorF(err))
		u.recordFailure(p, err)
	}
}

func (u *AssignmentUseCase) recordFailure(p *pendingAssign, err error) {
	msg := "could not save the responsible change, try again"
	if IsRejection(err) || errors.Is(err, ErrSaveInProgress) {
		msg = err.Error()
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dropFailures(p.orderID, p.target.String())
	u.failed[p.orderID] = append(u.failed[p.orderID], AutoSaveFailure{
		Target:     p.target.String(),
		EmployeeID: p.employeeID,
		Message:    msg,
		At:         u.persister.Now(),
	})
}

// dropFailures forgets failures of target; u.mu must be held.
func (u *AssignmentUseCase) dropFailures(orderID, target string) {
	list := u.failed[orderID]
	kept := list[:0]
	for _, f := range list {
		if f.Target != target {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		delete(u.failed, orderID)
		return
	}
	u.failed[orderID] = kept
}

// AutoSaveFailures returns and forgets the failed debounced saves of an order.
func (u *AssignmentUseCase) AutoSaveFailures(orderID string) []AutoSaveFailure {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := u.failed[orderID]
	delete(u.failed, orderID)
	return out
}

func (u *AssignmentUseCase) save(ctx context.Context, p *pendingAssign) error {
	_, err := u.Assign(ctx, p.sess, p.orderID, p.target, p.employeeID)
	return err
}

// Flush persists every pending debounced assignment now.
func (u *AssignmentUseCase) Flush(ctx context.Context) error {
	u.mu.Lock()
	due := make([]*pendingAssign, 0, len(u.pending))
	for key, p := range u.pending {
		if p.timer.Stop() {
			due = append(due, p)
		}
		delete(u.pending, key)
	}
	u.mu.Unlock()

	var errs []error
	for _, p := range due {
		if err := u.save(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (u *AssignmentUseCase) ListEmployees(ctx context.Context) ([]entities.EmployeeStatus, error) {
	roster, err := u.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	markers, err := u.busy.List(ctx)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string]entities.EmployeeBusy, len(markers))
	for _, m := range markers {
		byEmployee[m.EmployeeID] = m
	}

	out := make([]entities.EmployeeStatus, 0, len(roster))
	for _, e := range roster {
		st := entities.EmployeeStatus{Employee: e, Availability: entities.AvailabilityAvailable}
		if m, ok := byEmployee[e.ID]; ok {
			m := m
			st.Availability = entities.AvailabilityBusy
			st.BusyWith = &m
		}
		out = append(out, st)
	}
	return out, nil
}

// validateTarget checks the key against the order: the stage must apply and
// a typed key needs the service on the order.
func validateTarget(o *entities.Order, target Target) error {
	if err := target.Key.Validate(); err != nil {
		return errors.Join(ErrInvalidStage, err)
	}
	if target.Service && target.Key.ServiceType == "" {
		return ErrInvalidServiceType
	}
	if !o.StageApplicable(target.Key.Stage) {
		return reject(ErrStageNotApplicable)
	}
	if target.Key.ServiceType != "" && o.Service(target.Key.ServiceType) == nil {
		return ErrServiceNotFound
	}
	return nil
}
