package commands_test

import (
	"context"
	"sync"

	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/pool"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/ports"
	"spraying/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, key kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, o, key)
	if fn, ok := args.Get(0).(func(*order.Order) *order.Order); ok {
		return fn(o), args.Error(1)
	}
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

type MockSprayerDirectory struct{ mock.Mock }

func (m *MockSprayerDirectory) Add(ctx context.Context, s sprayer.Sprayer) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSprayerDirectory) Get(ctx context.Context, id kernel.UUID) (sprayer.Sprayer, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(sprayer.Sprayer)
	return res, args.Error(1)
}

func (m *MockSprayerDirectory) List(ctx context.Context) ([]sprayer.Sprayer, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]sprayer.Sprayer)
	return res, args.Error(1)
}

func (m *MockSprayerDirectory) ListAvailable(
	ctx context.Context,
	orderID kernel.UUID,
) (map[sprayer.Expertise][]pool.Entry, error) {
	args := m.Called(ctx, orderID)
	res, _ := args.Get(0).(map[sprayer.Expertise][]pool.Entry)
	return res, args.Error(1)
}

type MockFeedbackService struct{ mock.Mock }

func (m *MockFeedbackService) Submit(ctx context.Context, orderID kernel.UUID, f order.Feedback, key kernel.UUID) error {
	args := m.Called(ctx, orderID, f, key)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSprayerUoW struct{ mock.Mock }

func (m *MockSprayerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSprayerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSprayerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSprayerUoW) SprayerDirectory() ports.SprayerDirectory {
	args := m.Called()
	return args.Get(0).(ports.SprayerDirectory)
}

type MockSprayerUoWFactory struct{ mock.Mock }

func (m *MockSprayerUoWFactory) Create() commands.SprayerUoW {
	args := m.Called()
	return args.Get(0).(commands.SprayerUoW)
}

// switchableIdentity answers with whichever actor the test selected last.
type switchableIdentity struct {
	mu      sync.Mutex
	current *actor.Actor
}

func (s *switchableIdentity) As(a actor.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &a
}

func (s *switchableIdentity) CurrentActor(context.Context) (actor.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return actor.Actor{}, errs.NewPermissionDeniedError("anonymous", "ANY")
	}
	return *s.current, nil
}
