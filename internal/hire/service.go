package hire

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/models"
	"github.com/hireflow/hireflow/internal/notify"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service implements the hire lifecycle. Every transition is applied as a
// single atomic update whose predicate includes the expected prior status,
// so concurrent transitions against the same hire cannot both win: the
// loser observes ErrNotFound.
//
// No method of this service writes vehicle status. A vehicle stays
// "available" through accept, start, complete and cancel; only the
// time-window availability filter keeps hires apart.
type Service struct {
	hires    db.HireCollection
	vehicles db.VehicleCollection
	counters db.CounterCollection
	events   notify.Publisher
}

// NewService creates a hire lifecycle service.
func NewService(hires db.HireCollection, vehicles db.VehicleCollection, counters db.CounterCollection, events notify.Publisher) *Service {
	if events == nil {
		events = notify.NopPublisher{}
	}
	return &Service{hires: hires, vehicles: vehicles, counters: counters, events: events}
}

// CreateInput carries the trip facts and assignment intent for a new hire.
type CreateInput struct {
	PassengerName       string                `json:"passenger_name"`
	PickupLocation      string                `json:"pickup_location"`
	DropLocation        string                `json:"drop_location"`
	DateTime            time.Time             `json:"date_time"`
	NumberOfPassengers  int                   `json:"number_of_passengers"`
	HirePrice           float64               `json:"hire_price"`
	SpecialRequirements string                `json:"special_requirements"`
	VehicleType         string                `json:"vehicle_type"`
	AssignmentType      models.AssignmentType `json:"assignment_type"`
	VehicleID           string                `json:"vehicle_id"`
}

// Create validates the trip facts, resolves the assignment mode and
// inserts the hire in the unassigned state with a per-organization
// sequential reference.
func (s *Service) Create(ctx context.Context, claims models.Claims, in CreateInput) (*models.Hire, error) {
	if in.PassengerName == "" || in.PickupLocation == "" || in.DropLocation == "" ||
		in.DateTime.IsZero() || in.NumberOfPassengers <= 0 || in.HirePrice <= 0 {
		return nil, ErrValidation
	}

	var vehicleID *primitive.ObjectID
	if in.VehicleID != "" {
		oid, err := primitive.ObjectIDFromHex(in.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicle id: %w", ErrValidation)
		}
		vehicleID = &oid
	}

	mode, binding, err := ResolveAssignment(in.AssignmentType, vehicleID)
	if err != nil {
		return nil, err
	}

	seq, err := s.counters.NextHireSequence(ctx, claims.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("allocate hire sequence: %w", err)
	}

	hire := models.Hire{
		HireID:              fmt.Sprintf("HR-%04d", seq),
		OrganizationID:      claims.OrganizationID,
		PassengerName:       in.PassengerName,
		PickupLocation:      in.PickupLocation,
		DropLocation:        in.DropLocation,
		DateTime:            in.DateTime,
		NumberOfPassengers:  in.NumberOfPassengers,
		HirePrice:           in.HirePrice,
		SpecialRequirements: in.SpecialRequirements,
		VehicleType:         in.VehicleType,
		AssignmentType:      mode,
		VehicleID:           binding,
		Status:              models.HireStatusActive,
		CreatedBy:           claims.UserID,
	}

	created, err := s.hires.InsertHire(ctx, hire)
	if err != nil {
		return nil, err
	}
	s.publish(created, claims.UserID)
	return created, nil
}

// Accept moves an unassigned hire to accepted, computing the commission
// split from the price at this moment and stamping the accepting actor.
func (s *Service) Accept(ctx context.Context, claims models.Claims, id string) (*models.Hire, error) {
	current, err := s.hires.FindHireByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !current.IsUnassigned() {
		return nil, ErrNotFound
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     models.HireStatusAccepted,
		"commission": CalculateCommission(current.HirePrice),
		"trip_progress": models.TripProgress{
			AcceptedAt: &now,
			AcceptedBy: claims.UserID,
		},
	}}

	// The status guard prevents a double accept; the price guard makes
	// the commission above binding only if no edit changed the price
	// between the read and this write.
	guard := bson.M{"hire_price": current.HirePrice}
	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID, models.UnassignedStatuses(), guard, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Start moves an accepted hire to in_progress.
func (s *Service) Start(ctx context.Context, claims models.Claims, id string) (*models.Hire, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":                   models.HireStatusInProgress,
		"trip_progress.started_at": now,
	}}

	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID,
		[]models.HireStatus{models.HireStatusAccepted}, nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Complete moves an in_progress hire to completed, keeping the commission
// in place, and records optional driver notes.
func (s *Service) Complete(ctx context.Context, claims models.Claims, id, notes string) (*models.Hire, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":                     models.HireStatusCompleted,
		"trip_progress.completed_at": now,
		"trip_progress.driver_notes": notes,
	}}

	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID,
		[]models.HireStatus{models.HireStatusInProgress}, nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Cancel terminates a hire from any pre-completion state. The reason is
// mandatory. The vehicle binding, trip progress and commission are
// cleared; the vehicle's own status is untouched.
func (s *Service) Cancel(ctx context.Context, claims models.Claims, id, reason string) (*models.Hire, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	update := bson.M{
		"$set": bson.M{
			"status":              models.HireStatusCancelled,
			"cancellation_reason": reason,
		},
		"$unset": bson.M{
			"vehicle_id":    "",
			"trip_progress": "",
			"commission":    "",
		},
	}

	from := append(models.UnassignedStatuses(), models.HireStatusAccepted, models.HireStatusInProgress)
	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID, from, nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Return puts an accepted or started hire back in the unassigned state on
// the driver's request. The binding is cleared and the assignment mode is
// forced to manual so the manager must explicitly reassign instead of the
// hire silently re-entering the auto pool. Trip progress and commission
// are cleared; the reason is recorded with a prefix naming the actor.
func (s *Service) Return(ctx context.Context, claims models.Claims, id, reason string) (*models.Hire, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	update := bson.M{
		"$set": bson.M{
			"status":              models.HireStatusActive,
			"cancellation_reason": "Driver returned: " + reason,
			"assignment_type":     models.AssignmentManual,
		},
		"$unset": bson.M{
			"vehicle_id":    "",
			"trip_progress": "",
			"commission":    "",
		},
	}

	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID,
		[]models.HireStatus{models.HireStatusAccepted, models.HireStatusInProgress}, nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Reject clears the vehicle binding of an unassigned hire and forces
// manual assignment. The status does not change: this is a reassignment
// signal to the manager, not a lifecycle transition.
func (s *Service) Reject(ctx context.Context, claims models.Claims, id string) (*models.Hire, error) {
	update := bson.M{
		"$set":   bson.M{"assignment_type": models.AssignmentManual},
		"$unset": bson.M{"vehicle_id": ""},
	}

	hire, err := s.hires.TransitionHire(ctx, id, claims.OrganizationID, models.UnassignedStatuses(), nil, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.publish(hire, claims.UserID)
	return hire, nil
}

// Get fetches one hire scoped to the caller's organization.
func (s *Service) Get(ctx context.Context, claims models.Claims, id string) (*models.Hire, error) {
	hire, err := s.hires.FindHireByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return hire, nil
}

// List returns the organization's hires, newest first. view is "active"
// (everything still moving), "completed" (completed and cancelled) or
// empty; status narrows to one exact status instead.
func (s *Service) List(ctx context.Context, claims models.Claims, view string, status models.HireStatus) ([]models.Hire, error) {
	filter := bson.M{"organization_id": claims.OrganizationID}
	switch {
	case view == "completed":
		filter["status"] = bson.M{"$in": []models.HireStatus{models.HireStatusCompleted, models.HireStatusCancelled}}
	case view == "active":
		filter["status"] = bson.M{"$in": models.LiveStatuses()}
	case status != "":
		filter["status"] = status
	}

	return s.hires.FindHires(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// Delete removes a hire outright. The bound vehicle, if any, keeps its
// status.
func (s *Service) Delete(ctx context.Context, claims models.Claims, id string) error {
	_, err := s.hires.DeleteHire(ctx, id, claims.OrganizationID)
	if err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (s *Service) publish(hire *models.Hire, actor string) {
	err := s.events.PublishHireEvent(notify.Event{
		OrganizationID: hire.OrganizationID,
		HireID:         hire.ID.Hex(),
		HireRef:        hire.HireID,
		Status:         string(hire.Status),
		Actor:          actor,
		Timestamp:      time.Now(),
	})
	if err != nil {
		log.WithError(err).WithField("hire_id", hire.HireID).Warn("failed to publish hire event")
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
