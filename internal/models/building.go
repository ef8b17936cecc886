package models

// BuildingType classifies the construction style of a building.
type BuildingType string

const (
	BuildingTypeAltbau   BuildingType = "altbau"
	BuildingTypeNeubau   BuildingType = "neubau"
	BuildingTypeHochhaus BuildingType = "hochhaus"
	BuildingTypeMixed    BuildingType = "mixed"
)

// Building is a physical structure containing units. Buildings are owned by
// value by their Property; they have no independent lifecycle.
type Building struct {
	StreetName       string       `json:"street_name"`
	HouseNumber      string       `json:"house_number"`
	PostalCode       string       `json:"postal_code"`
	City             string       `json:"city"`
	BuildingType     BuildingType `json:"building_type"`
	Floors           int          `json:"floors"`
	UnitsPerFloor    int          `json:"units_per_floor"`
	ConstructionYear *int         `json:"construction_year,omitempty"`
	Units            []Unit       `json:"units"`
}

// Clone returns a deep copy of the building and its units.
func (b Building) Clone() Building {
	out := b
	if b.ConstructionYear != nil {
		v := *b.ConstructionYear
		out.ConstructionYear = &v
	}
	if b.Units != nil {
		out.Units = make([]Unit, len(b.Units))
		for i, u := range b.Units {
			out.Units[i] = u.Clone()
		}
	}
	return out
}
