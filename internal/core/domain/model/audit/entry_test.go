package audit_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_Validate(t *testing.T) {
	valid := []audit.Action{
		audit.ActionCreated, audit.ActionUpdated, audit.ActionStarted,
		audit.ActionFinished, audit.ActionPaused, audit.ActionUpdatedQuantity,
		audit.ActionShipped, audit.ActionHelpRequested,
	}
	for _, a := range valid {
		assert.NoError(t, a.Validate(), a.String())
	}

	assert.Error(t, audit.Action("deleted").Validate())
	assert.Error(t, audit.Action("").Validate())
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("creates entry with actor and location", func(t *testing.T) {
		actorID := kernel.NewUUID()
		locationID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		entry, err := audit.NewEntry(kernel.NewUUID(), audit.ActionStarted, &actorID, orderID, &locationID, "started at Cutting", now)
		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, audit.ActionStarted, entry.Action())
		assert.True(t, entry.ActorID().IsEqual(actorID))
		assert.True(t, entry.OrderID().IsEqual(orderID))
		assert.True(t, entry.LocationID().IsEqual(locationID))
		assert.Equal(t, "started at Cutting", entry.Details())
		assert.Equal(t, now, entry.RecordedAt())
	})

	t.Run("creates system entry without actor or location", func(t *testing.T) {
		entry, err := audit.NewEntry(kernel.NewUUID(), audit.ActionCreated, nil, kernel.NewUUID(), nil, "order created", now)
		require.NoError(t, err)
		assert.Nil(t, entry.ActorID())
		assert.Nil(t, entry.LocationID())
	})

	t.Run("rejects invalid action", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.NewUUID(), audit.Action("nope"), nil, kernel.NewUUID(), nil, "", now)
		require.Error(t, err)
	})

	t.Run("rejects zero value order ID", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.NewUUID(), audit.ActionCreated, nil, kernel.UUID{}, nil, "", now)
		require.Error(t, err)
	})

	t.Run("rejects zero value actor ID when provided", func(t *testing.T) {
		var zero kernel.UUID
		_, err := audit.NewEntry(kernel.NewUUID(), audit.ActionCreated, &zero, kernel.NewUUID(), nil, "", now)
		require.Error(t, err)
	})
}

func TestEntry_Validate_ZeroValue(t *testing.T) {
	var entry audit.Entry
	require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
}
