package hire

import (
	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveAssignment normalizes the assignment mode and vehicle binding at
// creation or edit time. Auto mode never carries a binding: the hire stays
// open to every driver in the organization. Manual mode binds the given
// vehicle, or stays unbound when no vehicle is supplied.
func ResolveAssignment(mode models.AssignmentType, vehicleID *primitive.ObjectID) (models.AssignmentType, *primitive.ObjectID, error) {
	switch mode {
	case "":
		mode = models.AssignmentAuto
	case models.AssignmentAuto, models.AssignmentManual:
	default:
		return "", nil, ErrInvalidAssignment
	}

	if mode == models.AssignmentAuto {
		return mode, nil, nil
	}
	return mode, vehicleID, nil
}
