package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// Employee is one entry of the workshop roster.
type Employee struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Specialties []ServiceType `json:"specialties"`
	Active      bool          `json:"active"`
	Role        Role          `json:"role"`
}

// EmployeeBusy is the "employee in service" marker: while present the
// employee is occupied by the referenced order/activity.
//
// Storage model (DynamoDB):
//   - PK: employee_id (one marker per employee)
type EmployeeBusy struct {
	EmployeeID  string      `json:"employee_id"`
	OrderID     string      `json:"order_id"`
	Stage       Stage       `json:"stage"`
	ServiceType ServiceType `json:"service_type,omitempty"`
	Since       time.Time   `json:"since"`
}

// Slot is the stage key the marker points at.
func (b EmployeeBusy) Slot() StageKey {
	return StageKey{Stage: b.Stage, ServiceType: b.ServiceType}
}

// SameSlot reports whether the marker occupies exactly orderID/key.
func (b EmployeeBusy) SameSlot(orderID string, key StageKey) bool {
	return b.OrderID == orderID && b.Slot() == key
}

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
)

// EmployeeStatus is a roster entry with its computed availability.
type EmployeeStatus struct {
	Employee
	Availability Availability  `json:"availability"`
	BusyWith     *EmployeeBusy `json:"busy_with,omitempty"`
}

// Session is the acting user for one request.
type Session struct {
	UserID      string
	Name        string
	Role        Role
	Specialties []ServiceType
}
