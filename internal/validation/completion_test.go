package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/onboarding-service/internal/models"
	"github.com/poofware/onboarding-service/internal/utils"
)

// step1Property satisfies only the General Info predicate.
func step1Property() *models.Property {
	return &models.Property{
		Name:           "Haus Sonnenhof",
		Type:           models.PropertyTypeWEG,
		PropertyNumber: "WEG-001",
		Address:        "Hauptstraße 12a, 10115 Berlin",
	}
}

// step2Property satisfies steps 1 and 2 (buildings exist but have no units).
func step2Property() *models.Property {
	p := step1Property()
	p.Buildings = []models.Building{{
		StreetName:    "Hauptstraße",
		HouseNumber:   "12a",
		PostalCode:    "10115",
		City:          "Berlin",
		BuildingType:  models.BuildingTypeAltbau,
		Floors:        2,
		UnitsPerFloor: 1,
	}}
	return p
}

// completeProperty satisfies all three predicates.
func completeProperty() *models.Property {
	p := step2Property()
	p.Buildings[0].Units = []models.Unit{
		{UnitNumber: "WE1", Type: models.UnitTypeApartment, Rooms: 3, Size: 85, OwnershipShare: utils.Ptr(50.0)},
		{UnitNumber: "WE2", Floor: 1, Type: models.UnitTypeApartment, Rooms: 2, Size: 60, OwnershipShare: utils.Ptr(50.0)},
	}
	return p
}

func TestStepPredicates(t *testing.T) {
	t.Run("step 1 requires name, type and address", func(t *testing.T) {
		p := step1Property()
		require.True(t, Step1Complete(p))

		p.Address = ""
		require.False(t, Step1Complete(p))
	})

	t.Run("step 2 requires at least one fully-addressed building", func(t *testing.T) {
		require.False(t, Step2Complete(step1Property()))

		p := step2Property()
		require.True(t, Step2Complete(p))

		p.Buildings[0].PostalCode = ""
		require.False(t, Step2Complete(p))
	})

	t.Run("step 3 requires units in every building", func(t *testing.T) {
		require.False(t, Step3Complete(step2Property()))

		p := completeProperty()
		require.True(t, Step3Complete(p))

		// A second building without units breaks the predicate.
		p.Buildings = append(p.Buildings, models.Building{StreetName: "Nebenstraße"})
		require.False(t, Step3Complete(p))
	})

	t.Run("step 3 needs a share for WEG units", func(t *testing.T) {
		p := completeProperty()
		p.Buildings[0].Units[1].OwnershipShare = nil
		require.False(t, Step3Complete(p))
	})

	t.Run("step 3 needs rent for MV units", func(t *testing.T) {
		p := completeProperty()
		p.Type = models.PropertyTypeMV
		require.False(t, Step3Complete(p))

		for i := range p.Buildings[0].Units {
			p.Buildings[0].Units[i].Rent = utils.Ptr(900.0)
		}
		require.True(t, Step3Complete(p))
	})

	t.Run("step 3 tolerates shares that do not sum to 100", func(t *testing.T) {
		// The summation rule only blocks create/finalize; presence is enough
		// for wizard progress.
		p := completeProperty()
		p.Buildings[0].Units[0].OwnershipShare = utils.Ptr(10.0)
		require.True(t, Step3Complete(p))
	})

	t.Run("adding a missing field never flips a predicate back", func(t *testing.T) {
		p := completeProperty()
		p.Name = ""
		require.False(t, Step1Complete(p))
		require.True(t, Step2Complete(p))
		require.True(t, Step3Complete(p))

		p.Name = "Haus Sonnenhof"
		require.True(t, Step1Complete(p))
		require.True(t, Step2Complete(p))
		require.True(t, Step3Complete(p))
	})
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		name string
		p    *models.Property
		want int
	}{
		{"nothing filled", &models.Property{}, 0},
		{"step 1 only", step1Property(), 33},
		{"steps 1 and 2", step2Property(), 67},
		{"all steps", completeProperty(), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CompletionPercentage(tc.p))
		})
	}
}

func TestRecompute(t *testing.T) {
	t.Run("derives unit count, flags and percentage", func(t *testing.T) {
		p := completeProperty()
		Recompute(p)

		require.Equal(t, 2, p.UnitCount)
		require.True(t, p.Step1Complete)
		require.True(t, p.Step2Complete)
		require.True(t, p.Step3Complete)
		require.Equal(t, 100, p.CompletionPercentage)
		require.True(t, p.Completed)
		require.False(t, p.UpdatedAt.IsZero())
		require.False(t, p.LastModified.IsZero())
	})

	t.Run("idempotent", func(t *testing.T) {
		p := step2Property()
		Recompute(p)
		first := p.CompletionPercentage
		firstCompleted := p.Completed

		Recompute(p)
		require.Equal(t, first, p.CompletionPercentage)
		require.Equal(t, firstCompleted, p.Completed)
	})

	t.Run("never trusts a stale unit count", func(t *testing.T) {
		p := completeProperty()
		p.UnitCount = 99
		Recompute(p)
		require.Equal(t, 2, p.UnitCount)
	})
}
