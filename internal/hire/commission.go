package hire

import (
	"math"

	"github.com/hireflow/hireflow/internal/models"
)

// Commission rates applied when a hire is accepted.
const (
	ManagerCommissionRate = 0.10
	SystemCommissionRate  = 0.02
)

// CalculateCommission splits a hire price into manager, system and driver
// shares. The manager and system shares are rounded half-even to two
// decimals and the driver share is the remainder of the rounded price, so
// the three shares always sum to the rounded price exactly.
func CalculateCommission(hirePrice float64) models.Commission {
	manager := round2(hirePrice * ManagerCommissionRate)
	system := round2(hirePrice * SystemCommissionRate)
	return models.Commission{
		ManagerCommission: manager,
		SystemCommission:  system,
		DriverEarnings:    round2(round2(hirePrice) - manager - system),
	}
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
