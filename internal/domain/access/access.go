// Package access holds the capability checks consulted by the use cases.
// They are pure functions over the acting session.
package access

import (
	"retifica_os/internal/domain/entities"

	"github.com/samber/lo"
)

var roleRank = map[entities.Role]int{
	entities.RoleAdmin:      4,
	entities.RoleManager:    3,
	entities.RoleTechnician: 2,
	entities.RoleViewer:     1,
}

func Rank(r entities.Role) int {
	return roleRank[r]
}

// HasPermission reports whether role ranks at least minRole.
func HasPermission(role, minRole entities.Role) bool {
	return Rank(role) >= Rank(minRole) && Rank(role) > 0
}

// IsElevated is true for admin and manager.
func IsElevated(s entities.Session) bool {
	return HasPermission(s.Role, entities.RoleManager)
}

// CanOperate allows timer and status actions: technicians and above.
func CanOperate(s entities.Session) bool {
	return HasPermission(s.Role, entities.RoleTechnician)
}

// CanEditService allows toggling sub-tasks and reopening a service.
func CanEditService(s entities.Session, t entities.ServiceType) bool {
	if IsElevated(s) {
		return true
	}
	return s.Role == entities.RoleTechnician && lo.Contains(s.Specialties, t)
}

// CanReopenStage allows reopening a completed stage key. Technicians need a
// specialty mapping to the stage, or matching the inspected service type.
func CanReopenStage(s entities.Session, key entities.StageKey) bool {
	if IsElevated(s) {
		return true
	}
	if s.Role != entities.RoleTechnician {
		return false
	}
	if key.Stage.IsInspection() || key.ServiceType != "" {
		return lo.Contains(s.Specialties, key.ServiceType)
	}
	return lo.ContainsBy(s.Specialties, func(t entities.ServiceType) bool { return t.Stage() == key.Stage })
}
