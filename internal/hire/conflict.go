package hire

import (
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConflictWindowRadius is the band around a hire's scheduled time in which
// one vehicle cannot serve two hires.
const ConflictWindowRadius = time.Hour

// ConflictWindow returns the inclusive [t-1h, t+1h] band used for vehicle
// availability checks. A vehicle with a live hire at T is unavailable for
// any requested time inside T's window, boundaries included.
func ConflictWindow(t time.Time) (time.Time, time.Time) {
	return t.Add(-ConflictWindowRadius), t.Add(ConflictWindowRadius)
}

// FilterConflicting removes candidate vehicles whose id appears in the
// busy set. The filter is advisory: create and update trust the caller's
// vehicle id, so a manual assignment can still bypass it, and two managers
// assigning concurrently can both pass. There is no transactional guard.
func FilterConflicting(candidates []models.Vehicle, busy map[primitive.ObjectID]bool) []models.Vehicle {
	if len(busy) == 0 {
		return candidates
	}
	available := make([]models.Vehicle, 0, len(candidates))
	for _, v := range candidates {
		if !busy[v.ID] {
			available = append(available, v)
		}
	}
	return available
}
