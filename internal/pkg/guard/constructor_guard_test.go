package guard_test

import (
	"errors"
	"testing"

	"workshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Quantity struct {
		value int
		unit  string
		guard guard.ConstructorGuard
	}

	var errQuantityNotConstructed = errors.New("Quantity must be created via NewQuantity")

	newQuantity := func(value int, unit string) (Quantity, error) {
		if value < 0 {
			return Quantity{}, errors.New("value cannot be negative")
		}
		if unit == "" {
			return Quantity{}, errors.New("unit is required")
		}
		return Quantity{
			value: value,
			unit:  unit,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateQuantity := func(q Quantity) error {
		return q.guard.Validate(errQuantityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		q, err := newQuantity(100, "pcs")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateQuantity(q))
		assert.Equal(t, 100, q.value)
		assert.Equal(t, "pcs", q.unit)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var q Quantity // zero value

		// When
		err := validateQuantity(q)

		// Then
		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newQuantity(-100, "pcs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value cannot be negative")

		_, err = newQuantity(100, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit is required")
	})
}
