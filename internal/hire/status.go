package hire

import "github.com/hireflow/hireflow/internal/models"

// allowedTransitions is the directed graph of legal hire status changes.
// The unassigned state appears under both of its stored spellings so that
// legacy documents transition the same way as new ones.
//
// accepted/in_progress -> active is the driver return path; cancelled and
// completed are terminal.
var allowedTransitions = map[models.HireStatus][]models.HireStatus{
	models.HireStatusActive:     {models.HireStatusAccepted, models.HireStatusCancelled},
	models.HireStatusPending:    {models.HireStatusAccepted, models.HireStatusCancelled},
	models.HireStatusAccepted:   {models.HireStatusInProgress, models.HireStatusCancelled, models.HireStatusActive},
	models.HireStatusInProgress: {models.HireStatusCompleted, models.HireStatusCancelled, models.HireStatusActive},
	models.HireStatusCompleted:  {},
	models.HireStatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to models.HireStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status models.HireStatus) bool {
	return len(allowedTransitions[status]) == 0
}
