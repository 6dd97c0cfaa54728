package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByIDQuery(42)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.ID())
}

func TestNewGetOrderByIDQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)

	_, err = queries.NewGetOrderByIDQuery(-1)
	require.Error(t, err)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetOrdersByStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Open)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Open, query.Status())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
