package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType determines which validation branch applies downstream:
// WEG units carry ownership shares, MV units carry rent/tenant data.
type PropertyType string

const (
	PropertyTypeWEG PropertyType = "WEG"
	PropertyTypeMV  PropertyType = "MV"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusArchived PropertyStatus = "archived"
)

// Property is the root aggregate of the onboarding wizard. It owns its
// buildings (and their units) by value.
//
// UnitCount, Completed and CompletionPercentage are derived fields: they are
// recomputed on every mutation and never set independently.
type Property struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Type              PropertyType   `json:"type"`
	PropertyNumber    string         `json:"property_number"`
	ManagementCompany string         `json:"management_company,omitempty"`
	PropertyManager   string         `json:"property_manager,omitempty"`
	Accountant        string         `json:"accountant,omitempty"`
	Address           string         `json:"address"`
	Buildings         []Building     `json:"buildings"`
	UnitCount         int            `json:"unit_count"`
	Status            PropertyStatus `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	LastModified      time.Time      `json:"last_modified"`

	// Onboarding progress
	Step1Complete        bool `json:"step1_complete"`
	Step2Complete        bool `json:"step2_complete"`
	Step3Complete        bool `json:"step3_complete"`
	CurrentStep          int  `json:"current_step"`
	Completed            bool `json:"completed"`
	CompletionPercentage int  `json:"completion_percentage"`
}

// TotalUnits sums the unit counts of all buildings.
func (p *Property) TotalUnits() int {
	n := 0
	for _, b := range p.Buildings {
		n += len(b.Units)
	}
	return n
}

// Clone returns a deep copy of the property. The store hands out clones only,
// so callers can never mutate store state without going through an explicit
// write operation.
func (p Property) Clone() Property {
	out := p
	if p.Buildings != nil {
		out.Buildings = make([]Building, len(p.Buildings))
		for i, b := range p.Buildings {
			out.Buildings[i] = b.Clone()
		}
	}
	return out
}
