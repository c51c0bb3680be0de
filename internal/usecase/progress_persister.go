package usecase

import (
	"context"
	"reflect"
	"strings"
	"time"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/domain/progress"
	"retifica_os/internal/domain/timer"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"
)

// change collects what a mutation did to an order. undo runs when the
// mutation or the write fails; after runs once the write is confirmed.
type change struct {
	action string
	target string
	actor  string
	undo   []func(context.Context)
	after  []func(context.Context)
}

func (c *change) onUndo(f func(context.Context)) {
	if f != nil {
		c.undo = append(c.undo, f)
	}
}

func (c *change) onCommit(f func(context.Context)) {
	if f != nil {
		c.after = append(c.after, f)
	}
}

// mutation edits o in place. Returning changed=false skips the write.
type mutation func(ctx context.Context, o *entities.Order, now time.Time, c *change) (changed bool, err error)

// ProgressPersister is the single write path for order state: it re-reads
// the order, applies a mutation, recomputes the derived totals, writes the
// touched fields in one update and publishes the result.
type ProgressPersister struct {
	repo      interfaces.IOrderRepository
	publisher interfaces.IProgressPublisher
	clock     timer.Clock
	guard     *inflightGuard
}

func NewProgressPersister(repo interfaces.IOrderRepository, publisher interfaces.IProgressPublisher, clock timer.Clock) *ProgressPersister {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &ProgressPersister{repo: repo, publisher: publisher, clock: clock, guard: newInflightGuard()}
}

func (p *ProgressPersister) Now() time.Time {
	return p.clock()
}

// Load reads the latest order state.
func (p *ProgressPersister) Load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := p.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Mutate runs fn against a fresh copy of the order and persists the result.
func (p *ProgressPersister) Mutate(ctx context.Context, orderID, action string, fn mutation) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	release, err := p.guard.acquire(orderID)
	if err != nil {
		logger.L().Info("[order][persister] rejected concurrent save", logger.String("order_id", orderID), logger.String("action", action))
		return entities.Order{}, err
	}
	defer release()

	current, err := p.Load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	working := cloneOrder(current)
	now := p.clock()
	c := &change{action: action}

	changed, err := fn(ctx, &working, now, c)
	if err != nil {
		c.rollback(ctx)
		if IsRejection(err) {
			logger.L().Info("[order][persister] guard rejected",
				logger.String("order_id", orderID), logger.String("action", action), logger.String("target", c.target), logger.ErrorF(err))
		}
		return entities.Order{}, err
	}
	if !changed {
		c.rollback(ctx)
		return current, nil
	}

	upd := buildUpdate(current, working, now)
	saved, err := p.repo.Update(ctx, orderID, upd)
	if err != nil {
		c.rollback(ctx)
		logger.L().Error("[order][persister] update failed", logger.String("order_id", orderID), logger.String("action", action), logger.ErrorF(err))
		return entities.Order{}, err
	}
	if saved.ID == "" {
		c.rollback(ctx)
		return entities.Order{}, ErrOrderNotFound
	}

	for _, f := range c.after {
		f(ctx)
	}
	p.publish(ctx, saved, c, now)

	logger.L().Info("[order][persister] saved",
		logger.String("order_id", orderID),
		logger.String("action", action),
		logger.String("target", c.target),
		logger.Float64("progress", saved.Progress),
	)
	return saved, nil
}

func (c *change) rollback(ctx context.Context) {
	for i := len(c.undo) - 1; i >= 0; i-- {
		c.undo[i](ctx)
	}
}

func (p *ProgressPersister) publish(ctx context.Context, o entities.Order, c *change, now time.Time) {
	if p.publisher == nil {
		return
	}
	ev := entities.OrderProgressEvent{
		OrderID:    o.ID,
		Action:     c.action,
		Target:     c.target,
		ActorID:    c.actor,
		Status:     o.Status,
		Progress:   o.Progress,
		OccurredAt: now,
	}
	if err := p.publisher.PublishOrderProgress(ctx, ev); err != nil {
		logger.L().Error("[order][persister] publish failed", logger.String("order_id", o.ID), logger.ErrorF(err))
	}
}

// buildUpdate diffs before/after and recomputes the derived totals of after.
func buildUpdate(before, after entities.Order, now time.Time) interfaces.OrderUpdate {
	upd := interfaces.OrderUpdate{
		Stages:         make(map[string]entities.StageProgress),
		Progress:       progress.OrderFraction(after),
		EstimatedHours: progress.EstimatedHours(after),
		TotalWorkedMs:  totalWorked(after, now).Milliseconds(),
		UpdatedAt:      now,
	}
	for k, sp := range after.Stages {
		if old, ok := before.Stages[k]; !ok || !reflect.DeepEqual(old, sp) {
			upd.Stages[k] = sp
		}
	}
	if !reflect.DeepEqual(before.Services, after.Services) {
		upd.Services = after.Services
	}
	if before.Status != after.Status {
		status := after.Status
		upd.Status = &status
	}
	return upd
}

// totalWorked sums the elapsed time of finished activities. A typed service
// key is skipped once its stage key is finished, the stage timer already
// covering that work.
func totalWorked(o entities.Order, now time.Time) time.Duration {
	var d time.Duration
	for k, sp := range o.Stages {
		if sp.FinishedAt == nil {
			continue
		}
		if key, err := entities.ParseStageKey(k); err == nil && isServiceKey(key) {
			if o.StageProgress(entities.StageKey{Stage: key.Stage}).FinishedAt != nil {
				continue
			}
		}
		d += timer.Elapsed(sp, now)
	}
	return d
}

func cloneOrder(o entities.Order) entities.Order {
	out := o
	if o.Services != nil {
		out.Services = make([]entities.Service, len(o.Services))
		for i, s := range o.Services {
			s.Subtasks = append([]entities.SubAtividade(nil), s.Subtasks...)
			out.Services[i] = s
		}
	}
	out.Stages = make(map[string]entities.StageProgress, len(o.Stages))
	for k, sp := range o.Stages {
		sp.Pauses = clonePauses(sp.Pauses)
		out.Stages[k] = sp
	}
	return out
}

func clonePauses(in []entities.Pause) []entities.Pause {
	if in == nil {
		return nil
	}
	out := make([]entities.Pause, len(in))
	for i, p := range in {
		if p.End != nil {
			end := *p.End
			p.End = &end
		}
		out[i] = p
	}
	return out
}
