package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/train-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TrainRepository struct {
	db *pgxpool.Pool
}

func NewTrainRepository(db *pgxpool.Pool) *TrainRepository {
	return &TrainRepository{db: db}
}

const trainColumns = "id, name, base_price, discount_percentage"

func (r *TrainRepository) FindAll(ctx context.Context) ([]model.Train, error) {
	rows, err := getExecutor(ctx, r.db).Query(ctx, "SELECT "+trainColumns+" FROM trains ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", err)
	}
	defer rows.Close()

	trains := []model.Train{}
	for rows.Next() {
		var t model.Train
		if err := rows.Scan(&t.ID, &t.Name, &t.BasePrice, &t.DiscountPercentage); err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", err)
	}
	return trains, nil
}

// FindByID returns nil when no train has the given id
func (r *TrainRepository) FindByID(ctx context.Context, id int64) (*model.Train, error) {
	var t model.Train
	err := getExecutor(ctx, r.db).QueryRow(ctx, "SELECT "+trainColumns+" FROM trains WHERE id = $1", id).
		Scan(&t.ID, &t.Name, &t.BasePrice, &t.DiscountPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get train: %w", err)
	}
	return &t, nil
}

func (r *TrainRepository) Save(ctx context.Context, t model.Train) (*model.Train, error) {
	exec := getExecutor(ctx, r.db)

	var err error
	if t.ID == 0 {
		err = exec.QueryRow(ctx,
			"INSERT INTO trains (name, base_price, discount_percentage) VALUES ($1, $2, $3) RETURNING id",
			t.Name, t.BasePrice, t.DiscountPercentage,
		).Scan(&t.ID)
	} else {
		_, err = exec.Exec(ctx, `
			INSERT INTO trains (id, name, base_price, discount_percentage) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				base_price = EXCLUDED.base_price,
				discount_percentage = EXCLUDED.discount_percentage
		`, t.ID, t.Name, t.BasePrice, t.DiscountPercentage)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save train: %w", err)
	}
	return &t, nil
}

func (r *TrainRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := getExecutor(ctx, r.db).Exec(ctx, "DELETE FROM trains WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete train: %w", err)
	}
	return nil
}
