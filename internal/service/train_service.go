package service

import (
	"context"
	"fmt"
	"strings"

	"fsanano/train-booking/internal/model"
)

type TrainStore interface {
	FindAll(ctx context.Context) ([]model.Train, error)
	FindByID(ctx context.Context, id int64) (*model.Train, error)
	Save(ctx context.Context, t model.Train) (*model.Train, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TrainService struct {
	store TrainStore
}

func NewTrainService(store TrainStore) *TrainService {
	return &TrainService{store: store}
}

func validateTrain(t model.Train) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidTrain)
	}
	if t.BasePrice <= 0 {
		return fmt.Errorf("base price must be greater than 0: %w", ErrInvalidTrain)
	}
	if t.DiscountPercentage < 0 || t.DiscountPercentage > 100 {
		return fmt.Errorf("discount percentage must be between 0 and 100: %w", ErrInvalidTrain)
	}
	return nil
}

func (s *TrainService) GetAllTrains(ctx context.Context) ([]model.Train, error) {
	return s.store.FindAll(ctx)
}

func (s *TrainService) GetTrainByID(ctx context.Context, id int64) (*model.Train, error) {
	return s.store.FindByID(ctx, id)
}

// FindByID lets the service act as the ticket service's train lookup.
func (s *TrainService) FindByID(ctx context.Context, id int64) (*model.Train, error) {
	return s.GetTrainByID(ctx, id)
}

func (s *TrainService) CreateTrain(ctx context.Context, t model.Train) (*model.Train, error) {
	if err := validateTrain(t); err != nil {
		return nil, err
	}
	t.ID = 0
	return s.store.Save(ctx, t)
}

// UpdateTrain changes the train's name and prices. Tickets already booked
// keep the price they were given.
func (s *TrainService) UpdateTrain(ctx context.Context, id int64, details model.Train) (*model.Train, error) {
	if err := validateTrain(details); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("train %d: %w", id, ErrNotFound)
	}

	existing.Name = details.Name
	existing.BasePrice = details.BasePrice
	existing.DiscountPercentage = details.DiscountPercentage
	return s.store.Save(ctx, *existing)
}

func (s *TrainService) DeleteTrain(ctx context.Context, id int64) error {
	return s.store.DeleteByID(ctx, id)
}
