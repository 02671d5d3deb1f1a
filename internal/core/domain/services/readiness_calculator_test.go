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

func newWorkLog(t *testing.T) *worklog.WorkLog {
	t.Helper()
	wl, err := worklog.NewWorkLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return wl
}

func finishedWorkLog(t *testing.T, quantity, total int) *worklog.WorkLog {
	t.Helper()
	wl := newWorkLog(t)
	require.NoError(t, wl.Enqueue(1))
	require.NoError(t, wl.Start(time.Now()))
	require.NoError(t, wl.Finish(quantity, total, time.Now()))
	return wl
}

func inProgressWorkLog(t *testing.T, quantity, total int) *worklog.WorkLog {
	t.Helper()
	wl := newWorkLog(t)
	require.NoError(t, wl.Enqueue(1))
	require.NoError(t, wl.Start(time.Now()))
	require.NoError(t, wl.UpdateQuantity(quantity, total))
	return wl
}

func TestReadinessCalculator_Completion(t *testing.T) {
	calc := services.NewReadinessCalculator()

	t.Run("no records means zero", func(t *testing.T) {
		assert.Equal(t, 0, calc.Completion(10, nil))
	})

	t.Run("single completed location is one hundred percent", func(t *testing.T) {
		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10)}
		assert.Equal(t, 100, calc.Completion(10, entries))
	})

	t.Run("partial progress averages across locations", func(t *testing.T) {
		// 10 done + 5 done out of 2 x 10 units = 75%
		entries := []*worklog.WorkLog{
			finishedWorkLog(t, 10, 10),
			inProgressWorkLog(t, 5, 10),
		}
		assert.Equal(t, 75, calc.Completion(10, entries))
	})

	t.Run("rounds to nearest integer", func(t *testing.T) {
		// 1 of 3 units at one location: 33.33 -> 33
		entries := []*worklog.WorkLog{inProgressWorkLog(t, 1, 3)}
		assert.Equal(t, 33, calc.Completion(3, entries))
	})

	t.Run("clamped at one hundred", func(t *testing.T) {
		// an order's total can be edited down after work was logged
		now := time.Now()
		wl, err := worklog.RestoreWorkLog(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			worklog.InProgress, nil, 15, &now, nil,
		)
		require.NoError(t, err)

		assert.Equal(t, 100, calc.Completion(10, []*worklog.WorkLog{wl}))
	})
}

func TestReadinessCalculator_Readiness(t *testing.T) {
	calc := services.NewReadinessCalculator()

	newBoardOrder := func(t *testing.T) *order.Order {
		t.Helper()
		ord, err := order.NewOrder(kernel.NewUUID(), "W-100", "", "Acme", time.Now(), 10)
		require.NoError(t, err)
		return ord
	}

	t.Run("no records is not ready", func(t *testing.T) {
		assert.Equal(t, services.NotReady, calc.Readiness(newBoardOrder(t), nil))
	})

	t.Run("untouched record is not ready", func(t *testing.T) {
		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10), newWorkLog(t)}
		assert.Equal(t, services.NotReady, calc.Readiness(newBoardOrder(t), entries))
	})

	t.Run("in progress without quantity is not ready", func(t *testing.T) {
		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10), inProgressWorkLog(t, 0, 10)}
		assert.Equal(t, services.NotReady, calc.Readiness(newBoardOrder(t), entries))
	})

	t.Run("one done plus one producing is part ready", func(t *testing.T) {
		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10), inProgressWorkLog(t, 3, 10)}
		assert.Equal(t, services.PartReady, calc.Readiness(newBoardOrder(t), entries))
	})

	t.Run("all done is fully ready", func(t *testing.T) {
		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10), finishedWorkLog(t, 8, 10)}
		assert.Equal(t, services.FullyReady, calc.Readiness(newBoardOrder(t), entries))
	})

	t.Run("shipped orders are never ready again", func(t *testing.T) {
		ord := newBoardOrder(t)
		require.NoError(t, ord.Ship(10))

		entries := []*worklog.WorkLog{finishedWorkLog(t, 10, 10)}
		assert.Equal(t, services.NotReady, calc.Readiness(ord, entries))
	})
}

func TestReadinessCalculator_NeedsPrimaryProcessing(t *testing.T) {
	calc := services.NewReadinessCalculator()

	t.Run("missing record needs processing", func(t *testing.T) {
		assert.True(t, calc.NeedsPrimaryProcessing(nil))
	})

	t.Run("not started needs processing", func(t *testing.T) {
		assert.True(t, calc.NeedsPrimaryProcessing(newWorkLog(t)))
	})

	t.Run("queued still needs processing", func(t *testing.T) {
		wl := newWorkLog(t)
		require.NoError(t, wl.Enqueue(1))
		assert.True(t, calc.NeedsPrimaryProcessing(wl))
	})

	t.Run("started work clears the need", func(t *testing.T) {
		assert.False(t, calc.NeedsPrimaryProcessing(inProgressWorkLog(t, 0, 10)))
		assert.False(t, calc.NeedsPrimaryProcessing(finishedWorkLog(t, 10, 10)))
	})
}
