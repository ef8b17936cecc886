package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/poofware/onboarding-service/internal/models"
)

// OwnershipShareTolerance is the allowed deviation from 100% when summing the
// ownership shares of a WEG building. The boundary is inclusive.
const OwnershipShareTolerance = 0.1

// CheckOwnershipShares verifies that the ownership shares of all units in a
// WEG building sum to 100% within tolerance.
//
// Any unit with a missing or non-positive share poisons the sum (it becomes
// NaN), so the check can never accidentally pass on partially filled data.
// The message format is relied upon by the wizard UI; do not change it.
func CheckOwnershipShares(b models.Building) (bool, string) {
	sum := 0.0
	valid := true
	for _, u := range b.Units {
		if u.OwnershipShare == nil || *u.OwnershipShare <= 0 {
			valid = false
			continue
		}
		sum += *u.OwnershipShare
	}
	if !valid {
		sum = math.NaN()
	}

	if math.Abs(sum-100) <= OwnershipShareTolerance {
		return true, ""
	}
	return false, fmt.Sprintf("Total ownership shares (%.2f%%) must sum to 100%% (±0.1%% tolerance)", sum)
}

// CheckRentPresence verifies that every unit in an MV building carries a
// non-negative rent. A single violation fails the whole building; per-unit
// detail comes from the field validator instead.
func CheckRentPresence(b models.Building) (bool, string) {
	for _, u := range b.Units {
		if u.Rent == nil || *u.Rent < 0 {
			return false, "all units must have valid rent values (≥ 0)"
		}
	}
	return true, ""
}

// CheckUniqueUnitNumbers verifies that no two units in the building share the
// same unit number. Comparison is exact (case-sensitive); blank unit numbers
// are ignored rather than counted as collisions.
func CheckUniqueUnitNumbers(b models.Building) (bool, string) {
	seen := make(map[string]bool, len(b.Units))
	var dups []string
	for _, u := range b.Units {
		if u.UnitNumber == "" {
			continue
		}
		if seen[u.UnitNumber] {
			dups = append(dups, u.UnitNumber)
			continue
		}
		seen[u.UnitNumber] = true
	}
	if len(dups) == 0 {
		return true, ""
	}
	return false, fmt.Sprintf("Duplicate unit numbers found: %s", strings.Join(dups, ", "))
}
