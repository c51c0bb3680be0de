// Package progress derives the percentages shown by progress bars and the
// order-level fraction persisted as progresso_etapas. Everything here is a
// pure function of the order as read; nothing is cached.
package progress

import (
	"math"

	"retifica_os/internal/domain/entities"

	"github.com/samber/lo"
)

const (
	pointsCompleted  = 100
	pointsInProgress = 50

	stageWeight   = 2
	serviceWeight = 1
)

// ServicePercentage is round(100 × completed selected / selected). A service
// with nothing selected shows 100.
func ServicePercentage(s entities.Service) int {
	selected := lo.Filter(s.Subtasks, func(st entities.SubAtividade, _ int) bool { return st.Selected })
	if len(selected) == 0 {
		return 100
	}
	done := lo.CountBy(selected, func(st entities.SubAtividade) bool { return st.Completed })
	return int(math.Round(100 * float64(done) / float64(len(selected))))
}

// ServicePoints scores one service for the stage bar: 100 when completed, 50
// when it has a responsible party or a started timer, 0 otherwise. Pausing
// does not change the score.
func ServicePoints(o entities.Order, s entities.Service) int {
	if s.Completed {
		return pointsCompleted
	}
	if s.ResponsibleID != "" {
		return pointsInProgress
	}
	key := entities.StageKey{Stage: s.Type.Stage(), ServiceType: s.Type}
	if o.StageProgress(key).StartedAt != nil {
		return pointsInProgress
	}
	return 0
}

// StagePercentage averages ServicePoints over the stage's services. For
// inspection keys the services are those of the inspected type. When no
// service maps to the key, the stage's own state is scored the same way.
func StagePercentage(o entities.Order, key entities.StageKey) int {
	services := servicesForKey(o, key)
	if len(services) == 0 {
		switch o.StageProgress(key).State() {
		case entities.StageStateCompleted:
			return pointsCompleted
		case entities.StageStateInProgress:
			return pointsInProgress
		}
		return 0
	}
	total := 0
	for _, s := range services {
		total += ServicePoints(o, s)
	}
	return int(math.Round(float64(total) / float64(len(services))))
}

func servicesForKey(o entities.Order, key entities.StageKey) []entities.Service {
	if key.Stage.IsInspection() {
		return lo.Filter(o.Services, func(s entities.Service, _ int) bool { return s.Type == key.ServiceType })
	}
	services := o.ServicesForStage(key.Stage)
	if key.ServiceType != "" {
		services = lo.Filter(services, func(s entities.Service, _ int) bool { return s.Type == key.ServiceType })
	}
	return services
}

// StageUnits lists the stage keys that count towards the order fraction:
// one per applicable non-inspection stage and, for inspection stages, one
// per distinct service type on the order.
func StageUnits(o entities.Order) []entities.StageKey {
	types := o.ServiceTypes()
	units := make([]entities.StageKey, 0, len(entities.Stages)+2*len(types))
	for _, st := range entities.Stages {
		if !o.StageApplicable(st) {
			continue
		}
		if !st.IsInspection() {
			units = append(units, entities.StageKey{Stage: st})
			continue
		}
		for _, t := range types {
			units = append(units, entities.StageKey{Stage: st, ServiceType: t})
		}
	}
	return units
}

// OrderFraction is (2 × completed stage units + completed services) /
// (2 × stage units + services), in [0, 1].
func OrderFraction(o entities.Order) float64 {
	units := StageUnits(o)
	doneUnits := lo.CountBy(units, func(k entities.StageKey) bool { return o.StageProgress(k).Completed })
	doneServices := lo.CountBy(o.Services, func(s entities.Service) bool { return s.Completed })

	den := stageWeight*len(units) + serviceWeight*len(o.Services)
	if den == 0 {
		return 0
	}
	return float64(stageWeight*doneUnits+serviceWeight*doneServices) / float64(den)
}

// EstimatedHours sums the estimates of selected sub-tasks.
func EstimatedHours(o entities.Order) float64 {
	var h float64
	for _, s := range o.Services {
		for _, st := range s.Subtasks {
			if st.Selected {
				h += st.EstimatedHours
			}
		}
	}
	return h
}
