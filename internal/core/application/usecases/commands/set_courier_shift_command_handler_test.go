package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShiftCourierRepository struct{ mock.Mock }

func (m *MockShiftCourierRepository) Add(_ context.Context, _ *courier.Courier) error {
	return errors.New("not implemented in mock")
}
func (m *MockShiftCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockShiftCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockShiftCourierRepository) GetAllOnShift(_ context.Context) ([]*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShiftUoW struct{ mock.Mock }

func (m *MockShiftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShiftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShiftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShiftUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockShiftUoWFactory struct{ mock.Mock }

func (m *MockShiftUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

func TestSetCourierShiftCommandHandler_Handle_CourierStartsOwnShift(t *testing.T) {
	ctx := t.Context()
	aggregate, err := courier.NewCourier(kernel.NewUUID(), "Dmitry", "+15550101")
	require.NoError(t, err)
	actor := testCourierAccount(t, aggregate.ID())

	cmd, err := commands.NewSetCourierShiftCommand(aggregate.ID(), true, actor)
	require.NoError(t, err)

	repo := new(MockShiftCourierRepository)
	uow := new(MockShiftUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	factory := new(MockShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCourierShiftCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.OnShift())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetCourierShiftCommandHandler_Handle_ForeignCourierDenied(t *testing.T) {
	ctx := t.Context()
	actor := testCourierAccount(t, kernel.NewUUID()) // somebody else

	cmd, err := commands.NewSetCourierShiftCommand(kernel.NewUUID(), true, actor)
	require.NoError(t, err)

	factory := new(MockShiftUoWFactory)
	h := commands.NewSetCourierShiftCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderAccessDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestSetCourierShiftCommandHandler_Handle_SuperAdminEndsShift(t *testing.T) {
	ctx := t.Context()
	aggregate, err := courier.NewCourier(kernel.NewUUID(), "Dmitry", "+15550101")
	require.NoError(t, err)
	aggregate.StartShift()

	admin, err := accountWithRole(kernel.RoleSuperAdmin)
	require.NoError(t, err)

	cmd, err := commands.NewSetCourierShiftCommand(aggregate.ID(), false, admin)
	require.NoError(t, err)

	repo := new(MockShiftCourierRepository)
	uow := new(MockShiftUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	factory := new(MockShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCourierShiftCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, aggregate.OnShift())
}
