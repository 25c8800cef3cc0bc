package domain

// MaintenancePriority classifies how quickly a request should be handled.
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

// MaintenanceStatus represents the lifecycle state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// maintenanceTransitions defines the allowed state machine transitions.
// Pending requests may complete directly; staff often resolve a ticket in one
// step without marking it in progress first. Requests are never hard-deleted;
// cancellation is the terminal escape hatch.
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenancePending:    {MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled},
	MaintenanceInProgress: {MaintenanceCompleted, MaintenanceCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenanceRequest is a resident-submitted repair ticket. Every field is
// optional on the wire; the server owns the schema.
type MaintenanceRequest struct {
	Record
	RoomNumber  string              `json:"roomNumber,omitempty"`
	Type        string              `json:"type,omitempty"`
	Description string              `json:"description,omitempty"`
	Priority    MaintenancePriority `json:"priority,omitempty"`
	Status      MaintenanceStatus   `json:"status,omitempty"`
	UserID      string              `json:"userId,omitempty"`
	UserName    string              `json:"userName,omitempty"`
	Note        string              `json:"note,omitempty"`
	CreatedAt   string              `json:"createdAt,omitempty"`
	UpdatedAt   string              `json:"updatedAt,omitempty"`
}
