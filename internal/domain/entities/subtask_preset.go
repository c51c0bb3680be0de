package entities

// SubtaskPreset is a catalog entry used to seed a new service's checklist.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_type-index): service_type, sorted by position
type SubtaskPreset struct {
	ID             string      `json:"id"`
	ServiceType    ServiceType `json:"service_type"`
	Name           string      `json:"name"`
	EstimatedHours float64     `json:"estimated_hours"`
	Position       int         `json:"position"`
}
