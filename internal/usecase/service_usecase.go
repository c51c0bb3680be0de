package usecase

import (
	"context"
	"strings"
	"time"

	"retifica_os/internal/domain/access"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/progress"

	"github.com/google/uuid"
)

// ServiceView is the derived state of one service's checklist.
type ServiceView struct {
	Service            entities.Service
	Percentage         int
	CompletionEligible bool
}

func NewServiceView(s entities.Service) ServiceView {
	return ServiceView{
		Service:            s,
		Percentage:         progress.ServicePercentage(s),
		CompletionEligible: !s.Completed && s.AllSelectedCompleted(),
	}
}

// IServiceUseCase tracks sub-task completion and service completion.
//
// Completing every selected sub-task only makes a service eligible; it is
// completed by an explicit Complete with a resolved responsible party.
// Unchecking a sub-task of a completed service reopens it.
type IServiceUseCase interface {
	ToggleSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, subtaskID string, checked bool) (entities.Order, error)
	SelectSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, subtaskID string, selected bool) (entities.Order, error)
	AddSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, name string, estimatedHours float64) (entities.Order, error)
	Complete(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, responsibleID string) (entities.Order, error)
	Reopen(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType) (entities.Order, error)
	View(ctx context.Context, orderID string, t entities.ServiceType) (ServiceView, error)
}

type ServiceUseCase struct {
	persister  *ProgressPersister
	assignment *AssignmentUseCase
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(persister *ProgressPersister, assignment *AssignmentUseCase) *ServiceUseCase {
	return &ServiceUseCase{persister: persister, assignment: assignment}
}

// editableService returns the service of type t when sess may edit it.
func editableService(o *entities.Order, sess entities.Session, t entities.ServiceType) (*entities.Service, error) {
	if !t.Valid() {
		return nil, ErrInvalidServiceType
	}
	svc := o.Service(t)
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !access.CanEditService(sess, t) {
		return nil, ErrForbidden
	}
	return svc, nil
}

func (u *ServiceUseCase) ToggleSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, subtaskID string, checked bool) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "subtask_toggle", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = string(t)+"/"+subtaskID, sess.UserID
		svc, err := editableService(o, sess, t)
		if err != nil {
			return false, err
		}
		st := svc.Subtask(subtaskID)
		if st == nil {
			return false, ErrSubtaskNotFound
		}
		if st.Completed == checked {
			return false, nil
		}
		if checked && !st.Selected {
			return false, reject(ErrSubtaskNotSelected)
		}
		st.Completed = checked
		if !checked {
			reopenServiceAndKey(o, svc)
		}
		return true, nil
	})
}

func (u *ServiceUseCase) SelectSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, subtaskID string, selected bool) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "subtask_select", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = string(t)+"/"+subtaskID, sess.UserID
		svc, err := editableService(o, sess, t)
		if err != nil {
			return false, err
		}
		st := svc.Subtask(subtaskID)
		if st == nil {
			return false, ErrSubtaskNotFound
		}
		if st.Selected == selected {
			return false, nil
		}
		st.Selected = selected
		if !selected {
			st.Completed = false
		}
		if !svc.AllSelectedCompleted() {
			reopenServiceAndKey(o, svc)
		}
		return true, nil
	})
}

func (u *ServiceUseCase) AddSubtask(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, name string, estimatedHours float64) (entities.Order, error) {
	name = strings.TrimSpace(name)
	if name == "" || estimatedHours < 0 {
		return entities.Order{}, ErrInvalidSubtask
	}
	return u.persister.Mutate(ctx, orderID, "subtask_add", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = string(t), sess.UserID
		svc, err := editableService(o, sess, t)
		if err != nil {
			return false, err
		}
		svc.Subtasks = append(svc.Subtasks, entities.SubAtividade{
			ID:             uuid.NewString(),
			Name:           name,
			Selected:       true,
			EstimatedHours: estimatedHours,
		})
		reopenServiceAndKey(o, svc)
		return true, nil
	})
}

func (u *ServiceUseCase) Complete(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType, responsibleID string) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "service_complete", func(ctx context.Context, o *entities.Order, now time.Time, c *change) (bool, error) {
		c.target, c.actor = string(t), sess.UserID
		svc, err := editableService(o, sess, t)
		if err != nil {
			return false, err
		}
		if svc.Completed {
			return false, nil
		}
		if !svc.AllSelectedCompleted() {
			return false, reject(ErrSubtasksIncomplete)
		}
		emp, err := u.assignment.resolveResponsible(ctx, sess, responsibleID, svc.ResponsibleID, svc.ResponsibleName)
		if err != nil {
			return false, err
		}

		key := ServiceTarget(t).Key
		previous := svc.ResponsibleID
		markServiceCompleted(svc, emp, now)

		// The service's own timer, if it ran, closes with the service.
		if sp := o.StageProgress(key); sp.StartedAt != nil && !sp.Completed {
			if sp.ResponsibleID != emp.ID {
				u.assignment.clearBusyOnCommit(c, sp.ResponsibleID, o.ID, key)
			}
			finishKey(&sp, now)
			sp.Completed = true
			sp.ResponsibleID, sp.ResponsibleName = emp.ID, emp.Name
			o.SetStageProgress(key, sp)
		}
		if previous != emp.ID {
			u.assignment.clearBusyOnCommit(c, previous, o.ID, key)
		}
		u.assignment.clearBusyOnCommit(c, emp.ID, o.ID, key)
		return true, nil
	})
}

func (u *ServiceUseCase) Reopen(ctx context.Context, sess entities.Session, orderID string, t entities.ServiceType) (entities.Order, error) {
	return u.persister.Mutate(ctx, orderID, "service_reopen", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = string(t), sess.UserID
		svc, err := editableService(o, sess, t)
		if err != nil {
			return false, err
		}
		return reopenServiceAndKey(o, svc), nil
	})
}

func (u *ServiceUseCase) View(ctx context.Context, orderID string, t entities.ServiceType) (ServiceView, error) {
	if !t.Valid() {
		return ServiceView{}, ErrInvalidServiceType
	}
	o, err := u.persister.Load(ctx, orderID)
	if err != nil {
		return ServiceView{}, err
	}
	svc := o.Service(t)
	if svc == nil {
		return ServiceView{}, ErrServiceNotFound
	}
	return NewServiceView(*svc), nil
}

// reopenServiceAndKey clears a completed service, its typed timer key and
// the stage it belongs to.
func reopenServiceAndKey(o *entities.Order, svc *entities.Service) bool {
	if !reopenService(svc) {
		return false
	}
	reopenCompletedKey(o, ServiceTarget(svc.Type).Key)
	reopenCompletedKey(o, entities.StageKey{Stage: svc.Type.Stage()})
	return true
}

// reopenCompletedKey reopens key when it is completed.
func reopenCompletedKey(o *entities.Order, key entities.StageKey) {
	if sp := o.StageProgress(key); sp.Completed {
		reopenKey(&sp)
		o.SetStageProgress(key, sp)
	}
}
