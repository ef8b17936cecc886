package dtos

import (
	"github.com/poofware/onboarding-service/internal/models"
)

/*
CreateUnitRequest / CreateBuildingRequest / CreatePropertyRequest are the
strict submission DTOs for POST /api/v1/property. The validate tags are the
declarative half of the ruleset; the service layer re-runs the shared
field/cross-field validators on top so both invocation points stay aligned.
*/
type CreateUnitRequest struct {
	UnitNumber     string          `json:"unit_number" validate:"required,min=1,max=10"`
	Floor          int             `json:"floor" validate:"gte=0,lte=100"`
	Type           models.UnitType `json:"type" validate:"required,oneof=apartment office parking storage commercial"`
	Rooms          float64         `json:"rooms" validate:"gte=0,lte=20"`
	Size           float64         `json:"size" validate:"gt=0,lte=10000"`
	OwnershipShare *float64        `json:"ownership_share,omitempty" validate:"omitempty,gt=0,lte=100"`
	Owner          string          `json:"owner,omitempty" validate:"omitempty,max=100"`
	Rent           *float64        `json:"rent,omitempty" validate:"omitempty,gte=0,lte=100000"`
	Tenant         string          `json:"tenant,omitempty" validate:"omitempty,max=100"`
}

type CreateBuildingRequest struct {
	StreetName       string              `json:"street_name" validate:"required,min=1,max=100"`
	HouseNumber      string              `json:"house_number" validate:"required,min=1,max=20"`
	PostalCode       string              `json:"postal_code" validate:"required,min=4,max=10"`
	City             string              `json:"city" validate:"required,min=1,max=100"`
	BuildingType     models.BuildingType `json:"building_type" validate:"required,oneof=altbau neubau hochhaus mixed"`
	Floors           int                 `json:"floors" validate:"required,gte=1,lte=200"`
	UnitsPerFloor    int                 `json:"units_per_floor" validate:"required,gte=1,lte=50"`
	ConstructionYear *int                `json:"construction_year,omitempty" validate:"omitempty,gte=1800"`
	Units            []CreateUnitRequest `json:"units" validate:"dive"`
}

type CreatePropertyRequest struct {
	Name              string                  `json:"name" validate:"required,min=1,max=200"`
	Type              models.PropertyType     `json:"type" validate:"required,oneof=WEG MV"`
	PropertyNumber    string                  `json:"property_number" validate:"required,min=1,max=50"`
	ManagementCompany string                  `json:"management_company,omitempty" validate:"omitempty,max=200"`
	PropertyManager   string                  `json:"property_manager,omitempty" validate:"omitempty,max=100"`
	Accountant        string                  `json:"accountant,omitempty" validate:"omitempty,max=100"`
	Address           string                  `json:"address" validate:"required,min=5,max=500"`
	Buildings         []CreateBuildingRequest `json:"buildings" validate:"dive"`
}

func (r CreateUnitRequest) ToModel() models.Unit {
	return models.Unit{
		UnitNumber:     r.UnitNumber,
		Floor:          r.Floor,
		Type:           r.Type,
		Rooms:          r.Rooms,
		Size:           r.Size,
		OwnershipShare: r.OwnershipShare,
		Owner:          r.Owner,
		Rent:           r.Rent,
		Tenant:         r.Tenant,
	}
}

func (r CreateBuildingRequest) ToModel() models.Building {
	units := make([]models.Unit, len(r.Units))
	for i, u := range r.Units {
		units[i] = u.ToModel()
	}
	return models.Building{
		StreetName:       r.StreetName,
		HouseNumber:      r.HouseNumber,
		PostalCode:       r.PostalCode,
		City:             r.City,
		BuildingType:     r.BuildingType,
		Floors:           r.Floors,
		UnitsPerFloor:    r.UnitsPerFloor,
		ConstructionYear: r.ConstructionYear,
		Units:            units,
	}
}

func (r CreatePropertyRequest) ToModel() models.Property {
	buildings := make([]models.Building, len(r.Buildings))
	for i, b := range r.Buildings {
		buildings[i] = b.ToModel()
	}
	return models.Property{
		Name:              r.Name,
		Type:              r.Type,
		PropertyNumber:    r.PropertyNumber,
		ManagementCompany: r.ManagementCompany,
		PropertyManager:   r.PropertyManager,
		Accountant:        r.Accountant,
		Address:           r.Address,
		Buildings:         buildings,
		Status:            models.PropertyStatusActive,
		CurrentStep:       1,
	}
}

// DeleteResponse is the body returned by delete endpoints.
type DeleteResponse struct {
	Message string `json:"message"`
}

// PropertyStatsResponse aggregates the whole collection. The three count
// groups each partition total_properties.
type PropertyStatsResponse struct {
	TotalProperties             int `json:"total_properties"`
	WegProperties               int `json:"weg_properties"`
	MvProperties                int `json:"mv_properties"`
	TotalUnits                  int `json:"total_units"`
	ActiveProperties            int `json:"active_properties"`
	ArchivedProperties          int `json:"archived_properties"`
	AverageUnitsPerProperty     int `json:"average_units_per_property"`
	CompletedProperties         int `json:"completed_properties"`
	InProgressProperties        int `json:"in_progress_properties"`
	NotStartedProperties        int `json:"not_started_properties"`
	AverageCompletionPercentage int `json:"average_completion_percentage"`
}
