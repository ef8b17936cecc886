package models

// UnitType classifies a rentable/ownable space.
type UnitType string

const (
	UnitTypeApartment  UnitType = "apartment"
	UnitTypeOffice     UnitType = "office"
	UnitTypeParking    UnitType = "parking"
	UnitTypeStorage    UnitType = "storage"
	UnitTypeCommercial UnitType = "commercial"
)

// Unit represents one rentable/ownable space inside a building.
//
// OwnershipShare and Rent are pointers because the validation rules depend on
// whether the value was ever provided: a WEG unit without a share is invalid,
// a share of 0 is a different failure. Same for MV rent.
type Unit struct {
	UnitNumber     string   `json:"unit_number"`
	Floor          int      `json:"floor"`
	Type           UnitType `json:"type"`
	Rooms          float64  `json:"rooms"`
	Size           float64  `json:"size"` // m²
	OwnershipShare *float64 `json:"ownership_share,omitempty"`
	Owner          string   `json:"owner,omitempty"`
	Rent           *float64 `json:"rent,omitempty"`
	Tenant         string   `json:"tenant,omitempty"`
}

// Clone returns a deep copy of the unit.
func (u Unit) Clone() Unit {
	out := u
	if u.OwnershipShare != nil {
		v := *u.OwnershipShare
		out.OwnershipShare = &v
	}
	if u.Rent != nil {
		v := *u.Rent
		out.Rent = &v
	}
	return out
}
