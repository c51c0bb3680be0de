package usecase

import (
	"context"
	"strings"
	"time"

	"retifica_os/internal/domain/access"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/progress"
	"retifica_os/internal/domain/timer"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// NewServiceInput is one requested service on a new order.
type NewServiceInput struct {
	Type        entities.ServiceType
	Description string
}

type CreateOrderInput struct {
	ID               string
	Name             string
	CustomerID       string
	Priority         entities.Priority
	OpenedAt         time.Time
	ExpectedDelivery *time.Time
	Services         []NewServiceInput
}

// IOrderUseCase is the order lifecycle around the progress core: opening an
// order with its seeded checklists, status changes and catalog lookups.
type IOrderUseCase interface {
	Create(ctx context.Context, sess entities.Session, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, sess entities.Session, id string, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, sess entities.Session, id string) error
	ListPresets(ctx context.Context, t entities.ServiceType) ([]entities.SubtaskPreset, error)
	PauseReasons() []string
}

type OrderUseCase struct {
	persister *ProgressPersister
	repo      interfaces.IOrderRepository
	presets   interfaces.ISubtaskPresetRepository
	busy      interfaces.IEmployeeBusyRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(persister *ProgressPersister, repo interfaces.IOrderRepository, presets interfaces.ISubtaskPresetRepository, busy interfaces.IEmployeeBusyRepository) *OrderUseCase {
	return &OrderUseCase{persister: persister, repo: repo, presets: presets, busy: busy}
}

func (u *OrderUseCase) Create(ctx context.Context, sess entities.Session, in CreateOrderInput) (entities.Order, error) {
	if !access.IsElevated(sess) {
		return entities.Order{}, ErrForbidden
	}
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Order{}, ErrInvalidOrder
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedia
	}
	if !in.Priority.Valid() {
		return entities.Order{}, ErrInvalidOrder
	}
	types := lo.Map(in.Services, func(s NewServiceInput, _ int) entities.ServiceType { return s.Type })
	if len(lo.Uniq(types)) != len(types) {
		return entities.Order{}, ErrInvalidOrder
	}

	if existing, err := u.repo.GetByID(ctx, in.ID); err != nil {
		return entities.Order{}, err
	} else if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	services := make([]entities.Service, 0, len(in.Services))
	for _, s := range in.Services {
		if !s.Type.Valid() {
			return entities.Order{}, ErrInvalidServiceType
		}
		subtasks, err := u.seedSubtasks(ctx, s.Type)
		if err != nil {
			return entities.Order{}, err
		}
		services = append(services, entities.Service{
			Type:        s.Type,
			Description: strings.TrimSpace(s.Description),
			Subtasks:    subtasks,
		})
	}

	now := u.persister.Now()
	opened := in.OpenedAt
	if opened.IsZero() {
		opened = now
	}
	o := entities.Order{
		ID:               in.ID,
		Name:             in.Name,
		CustomerID:       strings.TrimSpace(in.CustomerID),
		Priority:         in.Priority,
		OpenedAt:         opened.UTC(),
		ExpectedDelivery: in.ExpectedDelivery,
		Status:           entities.OrderStatusOrcamento,
		Services:         services,
		Stages:           make(map[string]entities.StageProgress),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	o.EstimatedHours = progress.EstimatedHours(o)

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	logger.L().Info("[order][usecase] created",
		logger.String("order_id", created.ID), logger.Int("services", len(created.Services)), logger.String("actor_id", sess.UserID))
	return created, nil
}

// seedSubtasks copies the preset checklist of t, all selected and open.
func (u *OrderUseCase) seedSubtasks(ctx context.Context, t entities.ServiceType) ([]entities.SubAtividade, error) {
	presets, err := u.presets.ListByServiceType(ctx, t)
	if err != nil {
		return nil, err
	}
	return lo.Map(presets, func(p entities.SubtaskPreset, _ int) entities.SubAtividade {
		return entities.SubAtividade{
			ID:             uuid.NewString(),
			Name:           p.Name,
			Selected:       true,
			EstimatedHours: p.EstimatedHours,
		}
	}), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return u.persister.Load(ctx, id)
}

func (u *OrderUseCase) List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, status)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, sess entities.Session, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, ErrInvalidStatus
	}
	return u.persister.Mutate(ctx, id, "status_change", func(_ context.Context, o *entities.Order, _ time.Time, c *change) (bool, error) {
		c.target, c.actor = string(status), sess.UserID
		if !access.IsElevated(sess) {
			return false, ErrForbidden
		}
		if o.Status == status {
			return false, nil
		}
		o.Status = status
		return true, nil
	})
}

// Delete removes the order and frees every employee still marked busy on it.
func (u *OrderUseCase) Delete(ctx context.Context, sess entities.Session, id string) error {
	if !access.IsElevated(sess) {
		return ErrForbidden
	}
	o, err := u.persister.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}

	markers, err := u.busy.ListByOrderID(ctx, o.ID)
	if err != nil {
		logger.L().Error("[order][usecase] list busy markers failed", logger.String("order_id", o.ID), logger.ErrorF(err))
		return nil
	}
	for _, m := range markers {
		if _, err := u.busy.DeleteIfSlot(ctx, m.EmployeeID, o.ID, m.Slot()); err != nil {
			logger.L().Error("[order][usecase] clear busy failed",
				logger.String("order_id", o.ID), logger.String("employee_id", m.EmployeeID), logger.ErrorF(err))
		}
	}
	logger.L().Info("[order][usecase] deleted", logger.String("order_id", o.ID), logger.String("actor_id", sess.UserID))
	return nil
}

func (u *OrderUseCase) ListPresets(ctx context.Context, t entities.ServiceType) ([]entities.SubtaskPreset, error) {
	if !t.Valid() {
		return nil, ErrInvalidServiceType
	}
	return u.presets.ListByServiceType(ctx, t)
}

func (u *OrderUseCase) PauseReasons() []string {
	return append([]string(nil), timer.PauseReasons...)
}
