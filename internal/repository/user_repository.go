package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/train-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll returns every user ordered by id
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := getExecutor(ctx, r.db).Query(ctx, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByID returns nil when no user has the given id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := getExecutor(ctx, r.db).QueryRow(ctx, "SELECT id, name FROM users WHERE id = $1", id).Scan(&u.ID, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Save inserts the user when its ID is zero and upserts it otherwise
func (r *UserRepository) Save(ctx context.Context, u model.User) (*model.User, error) {
	exec := getExecutor(ctx, r.db)

	var err error
	if u.ID == 0 {
		err = exec.QueryRow(ctx, "INSERT INTO users (name) VALUES ($1) RETURNING id", u.Name).Scan(&u.ID)
	} else {
		_, err = exec.Exec(ctx, `
			INSERT INTO users (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, u.ID, u.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &u, nil
}

// DeleteByID removes the user and, through the foreign key, its tickets
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := getExecutor(ctx, r.db).Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
