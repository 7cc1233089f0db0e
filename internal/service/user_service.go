package service

import (
	"context"
	"fmt"
	"strings"

	"fsanano/train-booking/internal/model"
)

type UserStore interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Save(ctx context.Context, u model.User) (*model.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func validateUser(u model.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidUser)
	}
	return nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.store.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.store.FindByID(ctx, id)
}

// FindByID lets the service act as the ticket service's user lookup.
func (s *UserService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.GetUserByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	if err := validateUser(u); err != nil {
		return nil, err
	}
	u.ID = 0
	return s.store.Save(ctx, u)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, details model.User) (*model.User, error) {
	if err := validateUser(details); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	existing.Name = details.Name
	return s.store.Save(ctx, *existing)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.store.DeleteByID(ctx, id)
}
