package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"fsanano/train-booking/internal/model"
	"fsanano/train-booking/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, repository.Migrate(ctx, pool))

	// Truncate tables to ensure clean state
	_, err = pool.Exec(ctx, "TRUNCATE TABLE tickets, trains, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool) (*model.User, *model.Train) {
	ctx := context.Background()

	user, err := repository.NewUserRepository(pool).Save(ctx, model.User{Name: "John Doe"})
	require.NoError(t, err)

	train, err := repository.NewTrainRepository(pool).Save(ctx, model.Train{
		Name:               "Express",
		BasePrice:          1000,
		DiscountPercentage: 22,
	})
	require.NoError(t, err)

	return user, train
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	assert.NoError(t, repository.Migrate(context.Background(), pool))
}

func TestUserRepository_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := repository.NewUserRepository(pool)

	created, err := repo.Save(ctx, model.User{Name: "Jane"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repo.Save(ctx, model.User{ID: created.ID, Name: "Jane Smith"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Smith", found.Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	found, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTrainRepository_FindMissing(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	found, err := repository.NewTrainRepository(pool).FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	user, train := seed(t, pool)
	repo := repository.NewTicketRepository(pool)

	bookedAt := time.Date(2025, 10, 16, 9, 15, 45, 0, time.UTC)
	saved, err := repo.Save(ctx, model.Ticket{
		User:        user,
		Train:       train,
		BookingDate: bookedAt,
		FinalPrice:  780,
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.User.ID)
	assert.Equal(t, "John Doe", found.User.Name)
	assert.Equal(t, train.ID, found.Train.ID)
	assert.Equal(t, 22.0, found.Train.DiscountPercentage)
	assert.True(t, bookedAt.Equal(found.BookingDate))
	assert.Equal(t, 780.0, found.FinalPrice)
}

func TestTicketRepository_UpdateExisting(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	user, train := seed(t, pool)
	repo := repository.NewTicketRepository(pool)

	saved, err := repo.Save(ctx, model.Ticket{User: user, Train: train, BookingDate: time.Now(), FinalPrice: 780})
	require.NoError(t, err)

	other, err := repository.NewTrainRepository(pool).Save(ctx, model.Train{Name: "Regional", BasePrice: 1200, DiscountPercentage: 10})
	require.NoError(t, err)

	saved.Train = other
	saved.FinalPrice = 1080
	_, err = repo.Save(ctx, *saved)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].Train.ID)
	assert.Equal(t, 1080.0, all[0].FinalPrice)
}

func TestTicketRepository_SaveUnknownTrainFails(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	user, _ := seed(t, pool)

	_, err := repository.NewTicketRepository(pool).Save(context.Background(), model.Ticket{
		User:        user,
		Train:       &model.Train{ID: 999},
		BookingDate: time.Now(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save ticket")
}

func TestTicketRepository_DeleteCascadesAndIsNoop(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	user, train := seed(t, pool)
	repo := repository.NewTicketRepository(pool)

	_, err := repo.Save(ctx, model.Ticket{User: user, Train: train, BookingDate: time.Now(), FinalPrice: 780})
	require.NoError(t, err)

	// Deleting a missing ticket is not an error
	require.NoError(t, repo.DeleteByID(ctx, 999))

	// Deleting the train removes its tickets
	require.NoError(t, repository.NewTrainRepository(pool).DeleteByID(ctx, train.ID))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRunAtomic_RollsBackOnError(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	users := repository.NewUserRepository(pool)

	err := repository.RunAtomic(ctx, pool, func(ctx context.Context) error {
		if _, err := users.Save(ctx, model.User{Name: "Ghost"}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	all, err := users.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
