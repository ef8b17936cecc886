package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/poofware/onboarding-service/internal/models"
	"github.com/poofware/onboarding-service/internal/utils"
)

func storedProperty(name string, t models.PropertyType, createdAt time.Time) *models.Property {
	return &models.Property{
		ID:        uuid.New(),
		Name:      name,
		Type:      t,
		Address:   "Hauptstraße 12a, 10115 Berlin",
		Status:    models.PropertyStatusActive,
		CreatedAt: createdAt,
		Buildings: []models.Building{{
			StreetName: "Hauptstraße",
			Units:      []models.Unit{{UnitNumber: "WE1", OwnershipShare: utils.Ptr(100.0)}},
		}},
	}
}

func TestMemoryPropertyStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPropertyStore()

	p := storedProperty("Haus A", models.PropertyTypeWEG, time.Now().UTC())
	require.NoError(t, store.Create(ctx, p))

	t.Run("get returns the stored record", func(t *testing.T) {
		got, err := store.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "Haus A", got.Name)
	})

	t.Run("get of unknown id returns nil, nil", func(t *testing.T) {
		got, err := store.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("update of unknown id fails", func(t *testing.T) {
		ghost := storedProperty("Ghost", models.PropertyTypeMV, time.Now().UTC())
		err := store.Update(ctx, ghost)
		require.ErrorIs(t, err, utils.ErrPropertyNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		victim := storedProperty("Haus B", models.PropertyTypeMV, time.Now().UTC())
		require.NoError(t, store.Create(ctx, victim))
		require.NoError(t, store.Delete(ctx, victim.ID))

		got, err := store.GetByID(ctx, victim.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		require.ErrorIs(t, store.Delete(ctx, victim.ID), utils.ErrPropertyNotFound)
	})
}

func TestMemoryPropertyStoreCopyIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPropertyStore()

	p := storedProperty("Haus A", models.PropertyTypeWEG, time.Now().UTC())
	require.NoError(t, store.Create(ctx, p))

	// Mutating the object we handed to Create must not reach the store.
	p.Name = "tampered"
	p.Buildings[0].Units[0].UnitNumber = "tampered"

	got, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Haus A", got.Name)
	require.Equal(t, "WE1", got.Buildings[0].Units[0].UnitNumber)

	// Mutating a fetched copy (including nested units and pointer fields)
	// must not reach the store either.
	got.Name = "also tampered"
	got.Buildings[0].Units[0].UnitNumber = "X9"
	*got.Buildings[0].Units[0].OwnershipShare = 1.0

	again, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Haus A", again.Name)
	require.Equal(t, "WE1", again.Buildings[0].Units[0].UnitNumber)
	require.Equal(t, 100.0, *again.Buildings[0].Units[0].OwnershipShare)
}

func TestMemoryPropertyStoreListing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPropertyStore()

	base := time.Now().UTC()
	older := storedProperty("Older", models.PropertyTypeWEG, base.Add(-time.Hour))
	newer := storedProperty("Newer", models.PropertyTypeMV, base)
	newer.Status = models.PropertyStatusArchived
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	t.Run("list is ordered by creation time", func(t *testing.T) {
		all, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "Older", all[0].Name)
		require.Equal(t, "Newer", all[1].Name)
	})

	t.Run("filter by type", func(t *testing.T) {
		weg, err := store.ListByType(ctx, models.PropertyTypeWEG)
		require.NoError(t, err)
		require.Len(t, weg, 1)
		require.Equal(t, "Older", weg[0].Name)
	})

	t.Run("filter by status", func(t *testing.T) {
		archived, err := store.ListByStatus(ctx, models.PropertyStatusArchived)
		require.NoError(t, err)
		require.Len(t, archived, 1)
		require.Equal(t, "Newer", archived[0].Name)
	})

	t.Run("count", func(t *testing.T) {
		n, err := store.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
}

func TestMemoryPropertyStoreTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPropertyStore()

	keeper := storedProperty("Keeper", models.PropertyTypeWEG, time.Now().UTC())
	require.NoError(t, store.Create(ctx, keeper))

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		stray := storedProperty("Stray", models.PropertyTypeMV, time.Now().UTC())

		err := store.WithTransaction(ctx, func(ctx context.Context) error {
			require.NoError(t, store.Create(ctx, stray))
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := store.GetByID(ctx, stray.ID)
		require.NoError(t, err)
		require.Nil(t, got, "failed transaction must be rolled back")

		kept, err := store.GetByID(ctx, keeper.ID)
		require.NoError(t, err)
		require.NotNil(t, kept, "pre-existing data survives the rollback")
	})

	t.Run("commit on success", func(t *testing.T) {
		added := storedProperty("Added", models.PropertyTypeMV, time.Now().UTC())
		err := store.WithTransaction(ctx, func(ctx context.Context) error {
			return store.Create(ctx, added)
		})
		require.NoError(t, err)

		got, err := store.GetByID(ctx, added.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}
