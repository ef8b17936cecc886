package validation

import (
	"math"
	"time"

	"github.com/poofware/onboarding-service/internal/models"
)

// The onboarding wizard has exactly three sections. Completion is the share
// of sections whose predicate holds, quantized to 0/33/67/100.
const totalSteps = 3

// Step1Complete reports whether the General Info section is fully filled.
func Step1Complete(p *models.Property) bool {
	return p.Name != "" && p.Type != "" && p.Address != ""
}

// Step2Complete reports whether the Buildings section is fully filled: at
// least one building, each with a complete address, a building type and
// positive floor/units-per-floor counts.
func Step2Complete(p *models.Property) bool {
	if len(p.Buildings) == 0 {
		return false
	}
	for _, b := range p.Buildings {
		if b.StreetName == "" || b.HouseNumber == "" || b.PostalCode == "" || b.City == "" {
			return false
		}
		if b.BuildingType == "" || b.Floors <= 0 || b.UnitsPerFloor <= 0 {
			return false
		}
	}
	return true
}

// Step3Complete reports whether the Units section is fully filled: every
// building has at least one unit and every unit carries its structural
// fields plus the type-conditional share (WEG) or rent (MV).
//
// Deliberately lenient: the ownership shares only need to be present, not sum
// to 100%. The summation rule is enforced separately on the strict
// create/finalize path so autosave can report honest progress on partially
// distributed shares.
func Step3Complete(p *models.Property) bool {
	if len(p.Buildings) == 0 {
		return false
	}
	for _, b := range p.Buildings {
		if len(b.Units) == 0 {
			return false
		}
		for _, u := range b.Units {
			if u.UnitNumber == "" || u.Type == "" || u.Size <= 0 {
				return false
			}
			if p.Type == models.PropertyTypeWEG && u.OwnershipShare == nil {
				return false
			}
			if p.Type == models.PropertyTypeMV && u.Rent == nil {
				return false
			}
		}
	}
	return true
}

// CompletionPercentage quantizes the number of complete steps to an integer
// percentage: 0, 33, 67 or 100.
func CompletionPercentage(p *models.Property) int {
	complete := 0
	for _, done := range []bool{Step1Complete(p), Step2Complete(p), Step3Complete(p)} {
		if done {
			complete++
		}
	}
	return int(math.Round(float64(complete) / totalSteps * 100))
}

// Recompute refreshes every derived field of the property: unit count, step
// flags, completion percentage, completed flag and modification timestamps.
// Every mutation path (create, update, autosave, step update, finalize) must
// call this as its final step. Idempotent apart from the timestamps.
func Recompute(p *models.Property) {
	p.UnitCount = p.TotalUnits()
	p.Step1Complete = Step1Complete(p)
	p.Step2Complete = Step2Complete(p)
	p.Step3Complete = Step3Complete(p)
	p.CompletionPercentage = CompletionPercentage(p)
	p.Completed = p.CompletionPercentage == 100

	now := time.Now().UTC()
	p.UpdatedAt = now
	p.LastModified = now
}
