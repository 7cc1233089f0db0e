package service

import (
	"context"
	"fmt"
	"time"

	"fsanano/train-booking/internal/model"
)

// UserFinder returns nil when the user does not exist.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// TrainFinder returns nil when the train does not exist.
type TrainFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Train, error)
}

type TicketStore interface {
	FindAll(ctx context.Context) ([]model.Ticket, error)
	FindByID(ctx context.Context, id int64) (*model.Ticket, error)
	Save(ctx context.Context, t model.Ticket) (*model.Ticket, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TicketService struct {
	tickets TicketStore
	users   UserFinder
	trains  TrainFinder
	now     func() time.Time
}

type TicketServiceOption func(*TicketService)

// WithClock sets the source of booking timestamps.
func WithClock(now func() time.Time) TicketServiceOption {
	return func(s *TicketService) {
		s.now = now
	}
}

func NewTicketService(tickets TicketStore, users UserFinder, trains TrainFinder, opts ...TicketServiceOption) *TicketService {
	s := &TicketService{
		tickets: tickets,
		users:   users,
		trains:  trains,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TicketService) GetAllTickets(ctx context.Context) ([]model.Ticket, error) {
	return s.tickets.FindAll(ctx)
}

// GetTicketByID returns nil, nil when the ticket does not exist.
func (s *TicketService) GetTicketByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return s.tickets.FindByID(ctx, id)
}

// CreateTicket books a ticket for an existing user on an existing train,
// priced from the train's base price and discount.
func (s *TicketService) CreateTicket(ctx context.Context, userID, trainID int64) (*model.Ticket, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	train, err := s.trains.FindByID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, fmt.Errorf("train %d: %w", trainID, ErrNotFound)
	}

	return s.tickets.Save(ctx, model.Ticket{
		User:        user,
		Train:       train,
		BookingDate: s.now(),
		FinalPrice:  trainPrice(train),
	})
}

// UpdateTicket moves an existing ticket to the user and train carried in
// details and reprices it from that train. The references are taken as
// given; the booking date is kept.
func (s *TicketService) UpdateTicket(ctx context.Context, id int64, details model.Ticket) (*model.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %d: %w", id, ErrNotFound)
	}
	if details.Train == nil {
		return nil, fmt.Errorf("ticket %d has no train to price: %w", id, ErrInvalidTicket)
	}

	ticket.User = details.User
	ticket.Train = details.Train
	ticket.FinalPrice = trainPrice(details.Train)

	return s.tickets.Save(ctx, *ticket)
}

// DeleteTicket does not check that the ticket exists.
func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	return s.tickets.DeleteByID(ctx, id)
}
