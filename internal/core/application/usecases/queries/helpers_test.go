package queries_test

import (
	"context"
	"testing"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticIdentity struct {
	a actor.Actor
}

func (s staticIdentity) CurrentActor(context.Context) (actor.Actor, error) {
	return s.a, nil
}

func newActor(t *testing.T, r actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), r)
	require.NoError(t, err)
	return a
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, key kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, o, key)
	res, _ := args.Get(0).(*order.Order)
	return res, args.Error(1)
}

func (m *MockOrderRepository) FindApplied(ctx context.Context, id, key kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, key)
	res, _ := args.Get(0).(*order.Order)
	return res, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*order.Order)
	return res, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, f)
	res, _ := args.Get(0).([]*order.Order)
	return res, args.Error(1)
}
