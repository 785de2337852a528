package queries_test

import (
	"testing"

	"spraying/internal/core/application/usecases/queries"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewListOrdersQuery([]string{"pending", "CONFIRMED"}, 0, -3)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, []order.Status{order.Pending, order.Confirmed}, query.Statuses())
	assert.Equal(t, queries.DefaultListLimit, query.Limit())
	assert.Zero(t, query.Offset())
}

func TestNewListOrdersQuery_ClampsLimit(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, 10_000, 5)

	require.NoError(t, err)
	assert.Equal(t, queries.MaxListLimit, query.Limit())
	assert.Equal(t, 5, query.Offset())
}

func TestNewListOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery([]string{"SHIPPED"}, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewListSprayersQuery(t *testing.T) {
	all, err := queries.NewListSprayersQuery("")
	require.NoError(t, err)
	require.NoError(t, all.Validate())

	_, err = queries.NewListSprayersQuery("wizard")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
