package models

// AssignmentStatus is the lifecycle state shared by an assignment and all
// of the rows expanded from it.
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusOverdue   AssignmentStatus = "overdue"
)

// AssignmentStatuses lists every valid status in bucket order.
var AssignmentStatuses = []AssignmentStatus{
	AssignmentStatusAssigned,
	AssignmentStatusPending,
	AssignmentStatusCompleted,
	AssignmentStatusOverdue,
}

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusPending, AssignmentStatusCompleted, AssignmentStatusOverdue:
		return true
	}
	return false
}

// AccountStatus marks whether an admin or student may log in.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}
