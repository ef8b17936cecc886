package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/poofware/onboarding-service/internal/models"
)

// Size/rent thresholds above which a value is flagged as suspicious but not
// rejected.
const (
	maxPlausibleUnitSize = 10000 // m²
	maxPlausibleRent     = 50000
	minConstructionYear  = 1800
)

var postalCodePattern = regexp.MustCompile(`^\d{4,10}$`)

// ValidateUnit applies the per-unit structural rules. index is the 1-based
// position of the unit within its validation context and is embedded in every
// message so aggregated results stay attributable.
func ValidateUnit(u models.Unit, propType models.PropertyType, index int) *Result {
	r := newResult()
	label := fmt.Sprintf("Unit %d", index)

	if u.UnitNumber == "" {
		r.addError(label + ": Unit number is required")
	}
	if u.Floor < 0 {
		r.addError(label + ": Floor must be a non-negative number")
	}
	if u.Type == "" {
		r.addError(label + ": Unit type is required")
	}
	if u.Rooms < 0 {
		r.addError(label + ": Rooms must be a non-negative number")
	}
	if u.Size <= 0 {
		r.addError(label + ": Size must be greater than 0")
	} else if u.Size > maxPlausibleUnitSize {
		r.addWarning(label + ": Size seems unusually large")
	}

	switch propType {
	case models.PropertyTypeWEG:
		if u.OwnershipShare == nil || *u.OwnershipShare <= 0 {
			r.addError(label + ": Ownership share is required for WEG properties")
		} else if *u.OwnershipShare > 100 {
			r.addError(label + ": Ownership share cannot exceed 100%")
		}
		if u.Rent != nil {
			r.addWarning(label + ": Rent is not typically used for WEG properties")
		}
	case models.PropertyTypeMV:
		if u.Rent == nil || *u.Rent < 0 {
			r.addError(label + ": Rent is required for MV properties")
		} else if *u.Rent > maxPlausibleRent {
			r.addWarning(label + ": Rent seems unusually high")
		}
		if u.OwnershipShare != nil {
			r.addWarning(label + ": Ownership share is not typically used for MV properties")
		}
	}

	return r
}

// ValidateBuilding applies the building-level rules and delegates to
// ValidateUnit for every contained unit. The cross-field rules that span the
// unit list (duplicate unit numbers, WEG ownership-share sum) are included
// here as well so the aggregated result reflects them; the strict create path
// additionally runs them standalone.
func ValidateBuilding(b models.Building, propType models.PropertyType) *Result {
	r := newResult()

	if b.StreetName == "" {
		r.addError("Street name is required")
	}
	if b.HouseNumber == "" {
		r.addError("House number is required")
	}
	if b.PostalCode == "" {
		r.addError("Postal code is required")
	} else if !postalCodePattern.MatchString(b.PostalCode) {
		r.addWarning("Postal code format may be invalid")
	}
	if b.City == "" {
		r.addError("City is required")
	}
	if b.Floors < 1 {
		r.addError("Number of floors must be at least 1")
	}
	if b.UnitsPerFloor < 1 {
		r.addError("Units per floor must be at least 1")
	}
	if b.ConstructionYear != nil {
		maxYear := time.Now().Year() + 10
		if *b.ConstructionYear < minConstructionYear || *b.ConstructionYear > maxYear {
			r.addWarning(fmt.Sprintf("Construction year should be between %d and %d", minConstructionYear, maxYear))
		}
	}

	// Soft expectation only: the wizard pre-generates floors × unitsPerFloor
	// units but users may remove or add some.
	if b.Floors >= 1 && b.UnitsPerFloor >= 1 {
		expected := b.Floors * b.UnitsPerFloor
		if len(b.Units) != expected {
			r.addWarning(fmt.Sprintf("Unit count (%d) does not match floors × units per floor (%d)", len(b.Units), expected))
		}
	}

	for i, u := range b.Units {
		r.merge(ValidateUnit(u, propType, i+1), "")
	}

	if ok, msg := CheckUniqueUnitNumbers(b); !ok {
		r.addError(msg)
	}
	if propType == models.PropertyTypeWEG && len(b.Units) > 0 {
		if ok, msg := CheckOwnershipShares(b); !ok {
			r.addError(msg)
		}
	}

	return r
}

// ValidateProperty validates the root aggregate and merges every building's
// result with a 1-based "Building K:" prefix.
func ValidateProperty(p *models.Property) *Result {
	r := newResult()

	if p.Name == "" {
		r.addError("Property name is required")
	}
	if p.Address == "" {
		r.addError("Address is required")
	}
	if p.PropertyNumber == "" {
		r.addError("Property number is required")
	}

	if len(p.Buildings) == 0 {
		r.addWarning("No buildings defined")
		return r
	}

	for k, b := range p.Buildings {
		r.merge(ValidateBuilding(b, p.Type), fmt.Sprintf("Building %d: ", k+1))
	}

	return r
}
