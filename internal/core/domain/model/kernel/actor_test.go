package kernel_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		for _, name := range []string{"worker", "manager", "admin"} {
			role, err := kernel.RoleFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, role.String())
			assert.NoError(t, role.Validate())
		}
	})

	t.Run("rejects unknown role names", func(t *testing.T) {
		_, err := kernel.RoleFromString("operator")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_CanManageQueues(t *testing.T) {
	assert.False(t, kernel.RoleWorker.CanManageQueues())
	assert.True(t, kernel.RoleManager.CanManageQueues())
	assert.True(t, kernel.RoleAdmin.CanManageQueues())
}

func TestNewActor(t *testing.T) {
	t.Run("creates user actor", func(t *testing.T) {
		userID := kernel.NewUUID()
		actor, err := kernel.NewActor(userID, kernel.RoleWorker)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.False(t, actor.IsSystem())
		require.NotNil(t, actor.UserID())
		assert.True(t, actor.UserID().IsEqual(userID))
		assert.Equal(t, kernel.RoleWorker, actor.Role())
	})

	t.Run("rejects zero value user ID", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleWorker)
		require.Error(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)
		require.Error(t, err)
	})
}

func TestNewSystemActor(t *testing.T) {
	actor := kernel.NewSystemActor()

	require.NoError(t, actor.Validate())
	assert.True(t, actor.IsSystem())
	assert.Nil(t, actor.UserID())
	assert.Equal(t, kernel.RoleAdmin, actor.Role())
}

func TestActor_ZeroValue(t *testing.T) {
	var actor kernel.Actor
	require.Error(t, actor.Validate())
}
