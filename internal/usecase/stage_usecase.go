package usecase

import (
	"context"
	"strings"
	"time"

	"retifica_os/internal/domain/access"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/progress"
	"retifica_os/internal/domain/timer"
)

// TimerView is the live display value of one stage key.
type TimerView struct {
	Key     entities.StageKey
	State   timer.State
	Elapsed time.Duration
	Display string
}

// StageView is the derived state of a stage key as shown on its card.
type StageView struct {
	Key        entities.StageKey
	State      entities.StageState
	Percentage int
	Timer      TimerView
	Progress   entities.StageProgress
}

// IStageUseCase is the stage state machine plus its timer.
//
// Out-of-sequence timer calls (pause while not running, resume while not
// paused, complete when completed, reopen when not completed) are no-ops
// that return the order unchanged.
type IStageUseCase interface {
	Start(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, responsibleID string) (entities.Order, error)
	Pause(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, reason string) (entities.Order, error)
	Resume(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey) (entities.Order, error)
	Complete(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, responsibleID string) (entities.Order, error)
	Reopen(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey) (entities.Order, error)
	View(ctx context.Context, orderID string, key entities.StageKey) (StageView, error)
}

type StageUseCase struct {
	persister  *ProgressPersister
	assignment *AssignmentUseCase
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(persister *ProgressPersister, assignment *AssignmentUseCase) *StageUseCase {
	return &StageUseCase{persister: persister, assignment: assignment}
}

func (u *StageUseCase) Start(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, responsibleID string) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "stage_start", func(ctx context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = key.String(), sess.UserID
		if err := validateTarget(o, StageTarget(key)); err != nil {
			return false, err
		}
		if !access.CanOperate(sess) {
			return false, ErrForbidden
		}
		return u.start(ctx, sess, o, key, responsibleID, now, c)
	})
}

// start moves key to running: from idle it applies the start guards, from
// paused it resumes. The responsible party is resolved and marked busy.
func (u *StageUseCase) start(ctx context.Context, sess entities.Session, o *entities.Order, key entities.StageKey, responsibleID string, now time.Time, c *change) (bool, error) {
	sp := o.StageProgress(key)
	state := timer.StateOf(sp)
	if state == timer.StateRunning || state == timer.StateFinished {
		return false, nil
	}
	if state == timer.StateIdle && key.Stage == entities.StageRetifica && o.Status != entities.OrderStatusFabricacao {
		return false, reject(ErrRetificaRequiresProduction)
	}

	emp, err := u.assignment.resolveResponsible(ctx, sess, responsibleID, sp.ResponsibleID, sp.ResponsibleName)
	if err != nil {
		return false, err
	}
	if err := u.assignment.markBusy(ctx, emp, o.ID, key, now, c); err != nil {
		return false, err
	}
	if sp.ResponsibleID != "" && sp.ResponsibleID != emp.ID {
		u.assignment.clearBusyOnCommit(c, sp.ResponsibleID, o.ID, key)
	}

	timer.Start(&sp, now)
	sp.ResponsibleID, sp.ResponsibleName = emp.ID, emp.Name
	if key.Stage.IsInspection() {
		sp.ServiceType = key.ServiceType
	}
	o.SetStageProgress(key, sp)
	return true, nil
}

func (u *StageUseCase) Pause(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	return u.persister.Mutate(ctx, orderID, "stage_pause", func(_ context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = key.String(), sess.UserID
		if err := validateTarget(o, StageTarget(key)); err != nil {
			return false, err
		}
		if !access.CanOperate(sess) {
			return false, ErrForbidden
		}
		if reason == "" {
			return false, reject(ErrPauseReasonRequired)
		}
		sp := o.StageProgress(key)
		if !timer.Pause(&sp, now, reason) {
			return false, nil
		}
		o.SetStageProgress(key, sp)
		return true, nil
	})
}

func (u *StageUseCase) Resume(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "stage_resume", func(ctx context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = key.String(), sess.UserID
		if err := validateTarget(o, StageTarget(key)); err != nil {
			return false, err
		}
		if !access.CanOperate(sess) {
			return false, ErrForbidden
		}
		if timer.StateOf(o.StageProgress(key)) != timer.StatePaused {
			return false, nil
		}
		return u.start(ctx, sess, o, key, "", now, c)
	})
}

func (u *StageUseCase) Complete(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey, responsibleID string) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "stage_complete", func(ctx context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = key.String(), sess.UserID
		if err := validateTarget(o, StageTarget(key)); err != nil {
			return false, err
		}
		if !access.CanOperate(sess) {
			return false, ErrForbidden
		}
		return u.complete(ctx, sess, o, key, responsibleID, now, c)
	})
}

// complete finishes key's timer and marks it completed once the guards
// hold. A key that was never started is started and finished at now.
// A typed machining key also completes its service.
func (u *StageUseCase) complete(ctx context.Context, sess entities.Session, o *entities.Order, key entities.StageKey, responsibleID string, now time.Time, c *change) (bool, error) {
	sp := o.StageProgress(key)
	if sp.Completed {
		return false, nil
	}
	if err := checkCompletionGuards(o, key); err != nil {
		return false, err
	}
	if sp.StartedAt == nil && key.Stage == entities.StageRetifica && o.Status != entities.OrderStatusFabricacao {
		return false, reject(ErrRetificaRequiresProduction)
	}

	emp, err := u.assignment.resolveResponsible(ctx, sess, responsibleID, sp.ResponsibleID, sp.ResponsibleName)
	if err != nil {
		return false, err
	}

	previous := sp.ResponsibleID
	finishKey(&sp, now)
	sp.Completed = true
	sp.ResponsibleID, sp.ResponsibleName = emp.ID, emp.Name
	if key.Stage.IsInspection() {
		sp.ServiceType = key.ServiceType
	}
	o.SetStageProgress(key, sp)

	if isServiceKey(key) {
		svc := o.Service(key.ServiceType)
		if !svc.Completed {
			if svc.ResponsibleID != previous && svc.ResponsibleID != emp.ID {
				u.assignment.clearBusyOnCommit(c, svc.ResponsibleID, o.ID, key)
			}
			markServiceCompleted(svc, emp, now)
		}
	}
	if previous != emp.ID {
		u.assignment.clearBusyOnCommit(c, previous, o.ID, key)
	}
	u.assignment.clearBusyOnCommit(c, emp.ID, o.ID, key)
	return true, nil
}

// checkCompletionGuards enforces the sub-task, service and prerequisite rules.
func checkCompletionGuards(o *entities.Order, key entities.StageKey) error {
	if key.Stage == entities.StageInspecaoFinal {
		prereq := false
		for _, st := range []entities.Stage{entities.StageRetifica, entities.StageMontagem, entities.StageDinamometro} {
			if o.StageProgress(entities.StageKey{Stage: st}).Completed {
				prereq = true
				break
			}
		}
		if !prereq {
			return reject(ErrStagePrerequisite)
		}
	}
	if key.Stage.IsInspection() {
		return nil
	}

	services := o.ServicesForStage(key.Stage)
	for _, s := range services {
		if key.ServiceType != "" && s.Type != key.ServiceType {
			continue
		}
		if !s.AllSelectedCompleted() {
			return rejectf(ErrSubtasksIncomplete, "%s: %s", ErrSubtasksIncomplete.Error(), s.Type)
		}
	}
	if key.ServiceType != "" {
		return nil
	}
	for _, s := range services {
		if !s.Completed {
			return rejectf(ErrServicesIncomplete, "%s: %s", ErrServicesIncomplete.Error(), s.Type)
		}
	}
	return nil
}

func (u *StageUseCase) Reopen(ctx context.Context, sess entities.Session, orderID string, key entities.StageKey) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "stage_reopen", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = key.String(), sess.UserID
		if err := validateTarget(o, StageTarget(key)); err != nil {
			return false, err
		}
		if !access.CanReopenStage(sess, key) {
			return false, ErrForbidden
		}
		sp := o.StageProgress(key)
		if !sp.Completed {
			return false, nil
		}
		reopenKey(&sp)
		o.SetStageProgress(key, sp)

		if isServiceKey(key) && reopenService(o.Service(key.ServiceType)) {
			reopenCompletedKey(o, entities.StageKey{Stage: key.Stage})
		}
		return true, nil
	})
}

func (u *StageUseCase) View(ctx context.Context, orderID string, key entities.StageKey) (StageView, error) {
	if err := key.Validate(); err != nil {
		return StageView{}, ErrInvalidStage
	}
	o, err := u.persister.Load(ctx, orderID)
	if err != nil {
		return StageView{}, err
	}
	return NewStageView(o, key, u.persister.Now()), nil
}

func NewStageView(o entities.Order, key entities.StageKey, now time.Time) StageView {
	sp := o.StageProgress(key)
	elapsed := timer.Elapsed(sp, now)
	return StageView{
		Key:        key,
		State:      sp.State(),
		Percentage: progress.StagePercentage(o, key),
		Progress:   sp,
		Timer: TimerView{
			Key:     key,
			State:   timer.StateOf(sp),
			Elapsed: elapsed,
			Display: timer.Format(elapsed),
		},
	}
}

// isServiceKey is true for a machining/assembly key that times one service.
func isServiceKey(key entities.StageKey) bool {
	return key.ServiceType != "" && !key.Stage.IsInspection()
}

// finishKey stops the timer of a key, starting it first when it never ran.
func finishKey(sp *entities.StageProgress, now time.Time) {
	if timer.StateOf(*sp) == timer.StateIdle {
		timer.Start(sp, now)
	}
	timer.Finish(sp, now)
}

// reopenKey clears completion; responsible party, start and pauses are kept
// and the timer waits paused for a fresh start.
func reopenKey(sp *entities.StageProgress) {
	sp.Completed = false
	timer.Reopen(sp)
}

func markServiceCompleted(svc *entities.Service, emp entities.Employee, now time.Time) {
	t := now
	svc.Completed = true
	svc.CompletionDate = &t
	svc.ResponsibleID, svc.ResponsibleName = emp.ID, emp.Name
}

func reopenService(svc *entities.Service) bool {
	if svc == nil || !svc.Completed {
		return false
	}
	svc.Completed = false
	svc.CompletionDate = nil
	return true
}
