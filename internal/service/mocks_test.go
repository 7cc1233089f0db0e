package service_test

import (
	"context"

	"fsanano/train-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockTicketStore struct {
	mock.Mock
}

func (m *mockTicketStore) FindAll(ctx context.Context) ([]model.Ticket, error) {
	args := m.Called(ctx)
	tickets, _ := args.Get(0).([]model.Ticket)
	return tickets, args.Error(1)
}

func (m *mockTicketStore) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	ticket, _ := args.Get(0).(*model.Ticket)
	return ticket, args.Error(1)
}

func (m *mockTicketStore) Save(ctx context.Context, t model.Ticket) (*model.Ticket, error) {
	args := m.Called(ctx, t)
	switch v := args.Get(0).(type) {
	case func(context.Context, model.Ticket) *model.Ticket:
		return v(ctx, t), args.Error(1)
	case *model.Ticket:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTicketStore) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// echoSave makes Save return the ticket it was given.
func (m *mockTicketStore) echoSave() *mock.Call {
	return m.On("Save", mock.Anything, mock.AnythingOfType("model.Ticket")).
		Return(func(_ context.Context, t model.Ticket) *model.Ticket { return &t }, nil)
}

type mockUserFinder struct {
	mock.Mock
}

func (m *mockUserFinder) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockTrainFinder struct {
	mock.Mock
}

func (m *mockTrainFinder) FindByID(ctx context.Context, id int64) (*model.Train, error) {
	args := m.Called(ctx, id)
	train, _ := args.Get(0).(*model.Train)
	return train, args.Error(1)
}
