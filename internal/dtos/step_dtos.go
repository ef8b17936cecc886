package dtos

import (
	"github.com/poofware/onboarding-service/internal/models"
)

/*
The wizard saves as it goes, so everything below accepts partial data.
Pointer fields distinguish "not sent" from a zero value; absent fields are
defaulted when a partial unit/building is promoted to a full entity.
*/

// UnitInput is a partial unit as edited in step 3 of the wizard.
type UnitInput struct {
	UnitNumber     string           `json:"unit_number"`
	Floor          *int             `json:"floor,omitempty"`
	Type           *models.UnitType `json:"type,omitempty"`
	Rooms          *float64         `json:"rooms,omitempty"`
	Size           *float64         `json:"size,omitempty"`
	OwnershipShare *float64         `json:"ownership_share,omitempty"`
	Owner          string           `json:"owner,omitempty"`
	Rent           *float64         `json:"rent,omitempty"`
	Tenant         string           `json:"tenant,omitempty"`
}

// BuildingInput is a partial building as edited in step 2 of the wizard.
type BuildingInput struct {
	StreetName       string               `json:"street_name"`
	HouseNumber      string               `json:"house_number"`
	PostalCode       string               `json:"postal_code"`
	City             string               `json:"city"`
	BuildingType     *models.BuildingType `json:"building_type,omitempty"`
	Floors           *int                 `json:"floors,omitempty"`
	UnitsPerFloor    *int                 `json:"units_per_floor,omitempty"`
	ConstructionYear *int                 `json:"construction_year,omitempty"`
	Units            []UnitInput          `json:"units"`
}

// ToModel promotes a partial unit to a full entity, filling wizard defaults
// for anything the user has not touched yet.
func (r UnitInput) ToModel() models.Unit {
	u := models.Unit{
		UnitNumber:     r.UnitNumber,
		Floor:          0,
		Type:           models.UnitTypeApartment,
		Rooms:          1,
		Size:           50,
		OwnershipShare: r.OwnershipShare,
		Owner:          r.Owner,
		Rent:           r.Rent,
		Tenant:         r.Tenant,
	}
	if r.Floor != nil {
		u.Floor = *r.Floor
	}
	if r.Type != nil {
		u.Type = *r.Type
	}
	if r.Rooms != nil {
		u.Rooms = *r.Rooms
	}
	if r.Size != nil {
		u.Size = *r.Size
	}
	return u
}

// ToModel promotes a partial building to a full entity with wizard defaults.
func (r BuildingInput) ToModel() models.Building {
	b := models.Building{
		StreetName:       r.StreetName,
		HouseNumber:      r.HouseNumber,
		PostalCode:       r.PostalCode,
		City:             r.City,
		BuildingType:     models.BuildingTypeAltbau,
		Floors:           1,
		UnitsPerFloor:    1,
		ConstructionYear: r.ConstructionYear,
		Units:            make([]models.Unit, len(r.Units)),
	}
	if r.BuildingType != nil {
		b.BuildingType = *r.BuildingType
	}
	if r.Floors != nil {
		b.Floors = *r.Floors
	}
	if r.UnitsPerFloor != nil {
		b.UnitsPerFloor = *r.UnitsPerFloor
	}
	for i, u := range r.Units {
		b.Units[i] = u.ToModel()
	}
	return b
}

// BuildingsToModels converts a wholesale buildings replacement list.
func BuildingsToModels(inputs []BuildingInput) []models.Building {
	out := make([]models.Building, len(inputs))
	for i, b := range inputs {
		out[i] = b.ToModel()
	}
	return out
}

// CreateDraftRequest seeds a new draft property. Only the type is pinned at
// creation time (it selects the validation branch); everything else may
// arrive later via autosave or step updates.
type CreateDraftRequest struct {
	Name              string               `json:"name" validate:"omitempty,max=200"`
	Type              *models.PropertyType `json:"type,omitempty" validate:"omitempty,oneof=WEG MV"`
	PropertyNumber    string               `json:"property_number" validate:"omitempty,max=50"`
	ManagementCompany string               `json:"management_company,omitempty" validate:"omitempty,max=200"`
	PropertyManager   string               `json:"property_manager,omitempty" validate:"omitempty,max=100"`
	Accountant        string               `json:"accountant,omitempty" validate:"omitempty,max=100"`
	Address           string               `json:"address" validate:"omitempty,max=500"`
	Buildings         []BuildingInput      `json:"buildings,omitempty"`
	CurrentStep       *int                 `json:"current_step,omitempty" validate:"omitempty,gte=1,lte=3"`
}

// UpdatePropertyRequest is the partial-merge payload shared by PUT and the
// autosave PATCH. Nil fields leave the property untouched; a non-nil
// Buildings list replaces the property's buildings wholesale (buildings are
// never merged element-wise).
type UpdatePropertyRequest struct {
	Name              *string                `json:"name,omitempty" validate:"omitempty,max=200"`
	Type              *models.PropertyType   `json:"type,omitempty" validate:"omitempty,oneof=WEG MV"`
	PropertyNumber    *string                `json:"property_number,omitempty" validate:"omitempty,max=50"`
	ManagementCompany *string                `json:"management_company,omitempty" validate:"omitempty,max=200"`
	PropertyManager   *string                `json:"property_manager,omitempty" validate:"omitempty,max=100"`
	Accountant        *string                `json:"accountant,omitempty" validate:"omitempty,max=100"`
	Address           *string                `json:"address,omitempty" validate:"omitempty,max=500"`
	Buildings         *[]BuildingInput       `json:"buildings,omitempty"`
	Status            *models.PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	CurrentStep       *int                   `json:"current_step,omitempty" validate:"omitempty,gte=1,lte=3"`
}

// ApplyTo merges the non-nil fields into the property. The caller is
// responsible for recomputing derived state afterwards.
func (r UpdatePropertyRequest) ApplyTo(p *models.Property) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.PropertyNumber != nil {
		p.PropertyNumber = *r.PropertyNumber
	}
	if r.ManagementCompany != nil {
		p.ManagementCompany = *r.ManagementCompany
	}
	if r.PropertyManager != nil {
		p.PropertyManager = *r.PropertyManager
	}
	if r.Accountant != nil {
		p.Accountant = *r.Accountant
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.Buildings != nil {
		p.Buildings = BuildingsToModels(*r.Buildings)
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.CurrentStep != nil {
		p.CurrentStep = *r.CurrentStep
	}
}

// UpdateStepRequest carries the payload of a step-scoped update. Step 1 uses
// the general-info fields; steps 2 and 3 use Buildings.
type UpdateStepRequest struct {
	// Step 1: general info
	Name              *string              `json:"name,omitempty" validate:"omitempty,max=200"`
	Type              *models.PropertyType `json:"type,omitempty" validate:"omitempty,oneof=WEG MV"`
	PropertyNumber    *string              `json:"property_number,omitempty" validate:"omitempty,max=50"`
	ManagementCompany *string              `json:"management_company,omitempty" validate:"omitempty,max=200"`
	PropertyManager   *string              `json:"property_manager,omitempty" validate:"omitempty,max=100"`
	Accountant        *string              `json:"accountant,omitempty" validate:"omitempty,max=100"`
	Address           *string              `json:"address,omitempty" validate:"omitempty,max=500"`

	// Steps 2 and 3: wholesale buildings replacement
	Buildings *[]BuildingInput `json:"buildings,omitempty"`
}
