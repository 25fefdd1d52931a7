package hire

import (
	"context"
	"fmt"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DriverStats summarizes a driver's feed.
type DriverStats struct {
	Pending   int     `json:"pending"`
	Active    int     `json:"active"`
	Completed int     `json:"completed"`
	Earnings  float64 `json:"earnings"`
}

// DriverFeed is the driver portal view: hires grouped by organization
// name, plus summary counts and the summed earnings of completed hires.
type DriverFeed struct {
	HiresByOrg map[string][]models.Hire `json:"hires_by_org"`
	Stats      DriverStats              `json:"stats"`
}

// Feed builds the driver's view of the organization's hires, newest
// first. Cancelled hires are not shown.
func (s *Service) Feed(ctx context.Context, claims models.Claims) (*DriverFeed, error) {
	statuses := append(models.LiveStatuses(), models.HireStatusCompleted)
	hires, err := s.hires.FindHires(ctx, bson.M{
		"organization_id": claims.OrganizationID,
		"status":          bson.M{"$in": statuses},
	}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	stats := DriverStats{}
	for _, h := range hires {
		switch {
		case h.IsUnassigned():
			stats.Pending++
		case h.Status == models.HireStatusAccepted:
			stats.Active++
		case h.Status == models.HireStatusCompleted:
			stats.Completed++
			if h.Commission != nil {
				stats.Earnings += h.Commission.DriverEarnings
			}
		}
	}

	orgName := claims.OrganizationName
	if orgName == "" {
		orgName = "Organization"
	}
	return &DriverFeed{
		HiresByOrg: map[string][]models.Hire{orgName: hires},
		Stats:      stats,
	}, nil
}

// OrgStats is the manager dashboard summary.
type OrgStats struct {
	TotalHires     int64 `json:"total_hires"`
	ActiveHires    int64 `json:"active_hires"`
	CompletedHires int64 `json:"completed_hires"`
	TotalVehicles  int64 `json:"total_vehicles"`
}

// Stats counts the organization's hires and vehicles.
func (s *Service) Stats(ctx context.Context, claims models.Claims) (*OrgStats, error) {
	org := claims.OrganizationID

	total, err := s.hires.CountHires(ctx, bson.M{"organization_id": org})
	if err != nil {
		return nil, err
	}
	active, err := s.hires.CountHires(ctx, bson.M{
		"organization_id": org,
		"status":          bson.M{"$in": append(models.UnassignedStatuses(), models.HireStatusAccepted)},
	})
	if err != nil {
		return nil, err
	}
	completed, err := s.hires.CountHires(ctx, bson.M{
		"organization_id": org,
		"status":          models.HireStatusCompleted,
	})
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.CountVehicles(ctx, bson.M{"organization_id": org})
	if err != nil {
		return nil, err
	}

	return &OrgStats{
		TotalHires:     total,
		ActiveHires:    active,
		CompletedHires: completed,
		TotalVehicles:  vehicles,
	}, nil
}

// Notification is a recent-activity entry derived from hire updates.
type Notification struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	HireID  string    `json:"hire_id"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
}

// Notifications derives a recent-activity feed from the hires updated in
// the last 24 hours, newest first, capped at 20 entries.
func (s *Service) Notifications(ctx context.Context, claims models.Claims) ([]Notification, error) {
	hires, err := s.hires.FindHires(ctx, bson.M{
		"organization_id": claims.OrganizationID,
		"updated_at":      bson.M{"$gte": time.Now().Add(-24 * time.Hour)},
	}, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}).SetLimit(20))
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(hires))
	for _, h := range hires {
		kind, message := describeActivity(&h)
		if message == "" {
			continue
		}
		notifications = append(notifications, Notification{
			ID:      h.ID.Hex(),
			Type:    kind,
			Message: message,
			HireID:  h.HireID,
			Time:    h.UpdatedAt,
		})
	}
	return notifications, nil
}

func describeActivity(h *models.Hire) (string, string) {
	switch h.Status {
	case models.HireStatusAccepted:
		return "success", fmt.Sprintf("Hire %s accepted", h.HireID)
	case models.HireStatusInProgress:
		return "info", fmt.Sprintf("Hire %s trip started", h.HireID)
	case models.HireStatusCompleted:
		return "success", fmt.Sprintf("Hire %s completed successfully", h.HireID)
	case models.HireStatusCancelled:
		return "error", fmt.Sprintf("Hire %s was cancelled", h.HireID)
	default:
		if h.VehicleID != nil {
			return "warning", fmt.Sprintf("Hire %s assigned to a vehicle", h.HireID)
		}
		return "info", fmt.Sprintf("Hire %s created", h.HireID)
	}
}
