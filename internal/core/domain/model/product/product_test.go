package product_test

import (
	"errors"
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(1, "Produto Teste")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(1), p.ID())
		assert.Equal(t, "Produto Teste", p.Name())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := product.NewProduct(0, "Produto Teste")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "product id is invalid")
	})

	t.Run("should fail with negative id", func(t *testing.T) {
		_, err := product.NewProduct(-5, "Produto Teste")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := product.NewProduct(0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id is invalid")
		assert.Contains(t, err.Error(), "value is required: name")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value product fails validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsEqual(t *testing.T) {
	p1, _ := product.NewProduct(1, "Produto Teste")
	p2, _ := product.NewProduct(1, "Renamed")
	p3, _ := product.NewProduct(2, "Produto Teste")

	assert.True(t, p1.IsEqual(p2))
	assert.False(t, p1.IsEqual(p3))
}

func TestNotFoundError(t *testing.T) {
	t.Run("message identifies the missing product", func(t *testing.T) {
		err := product.NewNotFoundError(1)

		assert.Equal(t, "Product not found: 1", err.Error())
		assert.Equal(t, int64(1), err.ProductID)
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		var err error = product.NewNotFoundError(42)

		assert.ErrorIs(t, err, product.ErrProductNotFound)

		var notFound *product.NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, int64(42), notFound.ProductID)
	})

	t.Run("wrapped errors stay classifiable", func(t *testing.T) {
		err := fmt.Errorf("create order: %w", product.NewNotFoundError(7))

		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}
