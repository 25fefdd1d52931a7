package hire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateInput is a partial edit of a hire. Nil pointers leave the field
// untouched. VehicleID pointing at an empty string clears the binding.
type UpdateInput struct {
	PassengerName       *string    `json:"passenger_name"`
	PickupLocation      *string    `json:"pickup_location"`
	DropLocation        *string    `json:"drop_location"`
	DateTime            *time.Time `json:"date_time"`
	NumberOfPassengers  *int       `json:"number_of_passengers"`
	HirePrice           *float64   `json:"hire_price"`
	SpecialRequirements *string    `json:"special_requirements"`

	VehicleType    *string                `json:"vehicle_type"`
	AssignmentType *models.AssignmentType `json:"assignment_type"`
	VehicleID      *string                `json:"vehicle_id"`

	Status             *models.HireStatus `json:"status"`
	CancellationReason string             `json:"cancellation_reason"`
}

func (in *UpdateInput) hasTripFacts() bool {
	return in.PassengerName != nil || in.PickupLocation != nil || in.DropLocation != nil ||
		in.DateTime != nil || in.NumberOfPassengers != nil || in.HirePrice != nil ||
		in.SpecialRequirements != nil
}

func (in *UpdateInput) hasAssignmentFields() bool {
	return in.VehicleType != nil || in.AssignmentType != nil || in.VehicleID != nil
}

// Update applies a manager edit under the status gates: trip facts are
// frozen once the trip is in progress or completed, and the vehicle
// binding and assignment mode are frozen from acceptance until the hire
// is unassigned again. A status change through Update is only allowed to
// cancelled, with a mandatory reason.
//
// The write predicate includes the status observed by the read, so an
// edit racing a transition loses and reports ErrNotFound.
func (s *Service) Update(ctx context.Context, claims models.Claims, id string, in UpdateInput) (*models.Hire, error) {
	current, err := s.hires.FindHireByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	set := bson.M{}
	unset := bson.M{}

	if in.hasTripFacts() {
		if current.Status == models.HireStatusCompleted || current.Status == models.HireStatusInProgress {
			return nil, ErrImmutable
		}
		applyTripFacts(set, in)
		// A price edit on an accepted hire replaces its commission so
		// the split always reflects the price it was charged at.
		if in.HirePrice != nil && current.Status == models.HireStatusAccepted {
			set["commission"] = CalculateCommission(*in.HirePrice)
		}
	}

	if in.hasAssignmentFields() {
		if !current.IsUnassigned() {
			return nil, ErrImmutable
		}
		if err := applyAssignment(set, unset, current, in); err != nil {
			return nil, err
		}
	}

	if in.Status != nil && *in.Status != current.Status {
		if *in.Status != models.HireStatusCancelled {
			return nil, ErrInvalidStatus
		}
		if !CanTransition(current.Status, models.HireStatusCancelled) {
			return nil, ErrNotFound
		}
		reason := strings.TrimSpace(in.CancellationReason)
		if reason == "" {
			return nil, ErrReasonRequired
		}
		set["status"] = models.HireStatusCancelled
		set["cancellation_reason"] = reason
		unset["vehicle_id"] = ""
		unset["trip_progress"] = ""
		unset["commission"] = ""
	}

	if len(set) == 0 && len(unset) == 0 {
		return current, nil
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
		for field := range unset {
			delete(set, field)
		}
	}

	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID,
		[]models.HireStatus{current.Status}, nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

func applyTripFacts(set bson.M, in UpdateInput) {
	if in.PassengerName != nil {
		set["passenger_name"] = *in.PassengerName
	}
	if in.PickupLocation != nil {
		set["pickup_location"] = *in.PickupLocation
	}
	if in.DropLocation != nil {
		set["drop_location"] = *in.DropLocation
	}
	if in.DateTime != nil {
		set["date_time"] = *in.DateTime
	}
	if in.NumberOfPassengers != nil {
		set["number_of_passengers"] = *in.NumberOfPassengers
	}
	if in.HirePrice != nil {
		set["hire_price"] = *in.HirePrice
	}
	if in.SpecialRequirements != nil {
		set["special_requirements"] = *in.SpecialRequirements
	}
}

func applyAssignment(set, unset bson.M, current *models.Hire, in UpdateInput) error {
	if in.VehicleType != nil {
		if *in.VehicleType == "" {
			unset["vehicle_type"] = ""
		} else {
			set["vehicle_type"] = *in.VehicleType
		}
	}

	mode := current.AssignmentType
	if in.AssignmentType != nil {
		mode = *in.AssignmentType
	}

	binding := current.VehicleID
	if in.VehicleID != nil {
		if *in.VehicleID == "" {
			binding = nil
		} else {
			oid, err := primitive.ObjectIDFromHex(*in.VehicleID)
			if err != nil {
				return fmt.Errorf("invalid vehicle id: %w", ErrValidation)
			}
			binding = &oid
		}
	}

	mode, binding, err := ResolveAssignment(mode, binding)
	if err != nil {
		return err
	}

	set["assignment_type"] = mode
	if binding == nil {
		unset["vehicle_id"] = ""
	} else {
		set["vehicle_id"] = *binding
	}
	return nil
}
