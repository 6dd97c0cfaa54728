package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validProduct, err := product.NewProduct(1, "Produto Teste")
	require.NoError(t, err)

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(validProduct, 100.0, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.Product().IsEqual(validProduct))
		assert.InDelta(t, 100.0, item.Value(), 0)
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should capture the stated value as-is", func(t *testing.T) {
		item, err := order.NewItem(validProduct, 0.0, 1)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Value(), 0)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(validProduct, 100.0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem(validProduct, 100.0, -3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should fail with unconstructed product", func(t *testing.T) {
		var invalidProduct product.Product

		_, err := order.NewItem(invalidProduct, 100.0, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
