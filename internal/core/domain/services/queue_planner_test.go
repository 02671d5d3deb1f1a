package services_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queuedWorkLog(t *testing.T, position int) *worklog.WorkLog {
	t.Helper()
	wl, err := worklog.NewWorkLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, wl.Enqueue(position))
	return wl
}

func rankedOrder(t *testing.T, number string, position int) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), number, "", "Acme", time.Now(), 10)
	require.NoError(t, err)
	require.NoError(t, ord.PlaceInGlobalQueue(position))
	return ord
}

func TestQueuePlanner_NextPosition(t *testing.T) {
	planner := services.NewQueuePlanner()

	t.Run("empty queue starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, planner.NextPosition(nil))
	})

	t.Run("appends after the tail", func(t *testing.T) {
		queued := []*worklog.WorkLog{queuedWorkLog(t, 1), queuedWorkLog(t, 2), queuedWorkLog(t, 3)}
		assert.Equal(t, 4, planner.NextPosition(queued))
	})
}

func TestQueuePlanner_Repack(t *testing.T) {
	planner := services.NewQueuePlanner()

	t.Run("closes gaps preserving relative order", func(t *testing.T) {
		first := queuedWorkLog(t, 1)
		third := queuedWorkLog(t, 3)
		fifth := queuedWorkLog(t, 5)

		require.NoError(t, planner.Repack([]*worklog.WorkLog{fifth, first, third}))
		assert.Equal(t, 1, *first.QueuePosition())
		assert.Equal(t, 2, *third.QueuePosition())
		assert.Equal(t, 3, *fifth.QueuePosition())
	})

	t.Run("rejects records that are not queued", func(t *testing.T) {
		wl, err := worklog.NewWorkLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		err = planner.Repack([]*worklog.WorkLog{wl})
		require.Error(t, err)
	})

	t.Run("empty queue is a no-op", func(t *testing.T) {
		require.NoError(t, planner.Repack(nil))
	})
}

func TestQueuePlanner_PlanGlobalInsert(t *testing.T) {
	planner := services.NewQueuePlanner()

	t.Run("insert at head shifts everyone down", func(t *testing.T) {
		a := rankedOrder(t, "W-1", 1)
		b := rankedOrder(t, "W-2", 2)
		c := rankedOrder(t, "W-3", 3)
		target, err := order.NewOrder(kernel.NewUUID(), "W-4", "", "Acme", time.Now(), 10)
		require.NoError(t, err)

		require.NoError(t, planner.PlanGlobalInsert([]*order.Order{a, b, c}, target, 1))
		assert.Equal(t, 1, *target.GlobalQueuePosition())
		assert.Equal(t, 2, *a.GlobalQueuePosition())
		assert.Equal(t, 3, *b.GlobalQueuePosition())
		assert.Equal(t, 4, *c.GlobalQueuePosition())
	})

	t.Run("move within the queue renumbers densely", func(t *testing.T) {
		a := rankedOrder(t, "W-1", 1)
		b := rankedOrder(t, "W-2", 2)
		c := rankedOrder(t, "W-3", 3)

		// move the tail to the front
		require.NoError(t, planner.PlanGlobalInsert([]*order.Order{a, b, c}, c, 1))
		assert.Equal(t, 1, *c.GlobalQueuePosition())
		assert.Equal(t, 2, *a.GlobalQueuePosition())
		assert.Equal(t, 3, *b.GlobalQueuePosition())
	})

	t.Run("position above tail clamps to N+1", func(t *testing.T) {
		a := rankedOrder(t, "W-1", 1)
		target, err := order.NewOrder(kernel.NewUUID(), "W-9", "", "Acme", time.Now(), 10)
		require.NoError(t, err)

		require.NoError(t, planner.PlanGlobalInsert([]*order.Order{a}, target, 99))
		assert.Equal(t, 1, *a.GlobalQueuePosition())
		assert.Equal(t, 2, *target.GlobalQueuePosition())
	})

	t.Run("position below 1 fails", func(t *testing.T) {
		target, err := order.NewOrder(kernel.NewUUID(), "W-9", "", "Acme", time.Now(), 10)
		require.NoError(t, err)

		err = planner.PlanGlobalInsert(nil, target, 0)
		require.ErrorIs(t, err, services.ErrQueuePositionOutOfRange)
	})

	t.Run("no two orders share a position", func(t *testing.T) {
		a := rankedOrder(t, "W-1", 1)
		b := rankedOrder(t, "W-2", 2)
		c := rankedOrder(t, "W-3", 3)
		target, err := order.NewOrder(kernel.NewUUID(), "W-4", "", "Acme", time.Now(), 10)
		require.NoError(t, err)

		require.NoError(t, planner.PlanGlobalInsert([]*order.Order{a, b, c}, target, 2))

		seen := map[int]bool{}
		for _, ord := range []*order.Order{a, b, c, target} {
			pos := *ord.GlobalQueuePosition()
			assert.False(t, seen[pos], "duplicate position %d", pos)
			seen[pos] = true
		}
		assert.Equal(t, 2, *target.GlobalQueuePosition())
	})
}

func TestQueuePlanner_PlanGlobalRemove(t *testing.T) {
	planner := services.NewQueuePlanner()

	a := rankedOrder(t, "W-1", 1)
	b := rankedOrder(t, "W-2", 2)
	c := rankedOrder(t, "W-3", 3)

	require.NoError(t, planner.PlanGlobalRemove([]*order.Order{a, b, c}, b))
	assert.Nil(t, b.GlobalQueuePosition())
	assert.Equal(t, 1, *a.GlobalQueuePosition())
	assert.Equal(t, 2, *c.GlobalQueuePosition())
}
