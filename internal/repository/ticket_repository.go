package repository

import (
	"context"
	"errors"
	"fmt"

	"fsanano/train-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errIncompleteTicket = errors.New("ticket must reference a user and a train")

type TicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: db}
}

const selectTickets = `
	SELECT
		t.id, t.booking_date, t.final_price,
		u.id, u.name,
		tr.id, tr.name, tr.base_price, tr.discount_percentage
	FROM tickets t
	JOIN users u ON u.id = t.user_id
	JOIN trains tr ON tr.id = t.train_id
`

func scanTicket(row pgx.Row) (model.Ticket, error) {
	t := model.Ticket{User: &model.User{}, Train: &model.Train{}}
	err := row.Scan(
		&t.ID, &t.BookingDate, &t.FinalPrice,
		&t.User.ID, &t.User.Name,
		&t.Train.ID, &t.Train.Name, &t.Train.BasePrice, &t.Train.DiscountPercentage,
	)
	return t, err
}

// FindAll returns every ticket with its user and train, ordered by id
func (r *TicketRepository) FindAll(ctx context.Context) ([]model.Ticket, error) {
	rows, err := getExecutor(ctx, r.db).Query(ctx, selectTickets+" ORDER BY t.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []model.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// FindByID returns nil when no ticket has the given id
func (r *TicketRepository) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	t, err := scanTicket(getExecutor(ctx, r.db).QueryRow(ctx, selectTickets+" WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &t, nil
}

// Save inserts the ticket when its ID is zero and upserts it otherwise.
// Only the user and train ids are stored; the returned ticket carries the
// references it was given.
func (r *TicketRepository) Save(ctx context.Context, t model.Ticket) (*model.Ticket, error) {
	if t.User == nil || t.Train == nil {
		return nil, fmt.Errorf("failed to save ticket: %w", errIncompleteTicket)
	}

	exec := getExecutor(ctx, r.db)

	var err error
	if t.ID == 0 {
		err = exec.QueryRow(ctx, `
			INSERT INTO tickets (user_id, train_id, booking_date, final_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, t.User.ID, t.Train.ID, t.BookingDate, t.FinalPrice).Scan(&t.ID)
	} else {
		_, err = exec.Exec(ctx, `
			INSERT INTO tickets (id, user_id, train_id, booking_date, final_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				train_id = EXCLUDED.train_id,
				booking_date = EXCLUDED.booking_date,
				final_price = EXCLUDED.final_price
		`, t.ID, t.User.ID, t.Train.ID, t.BookingDate, t.FinalPrice)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}
	return &t, nil
}

// DeleteByID is a no-op when the ticket does not exist
func (r *TicketRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := getExecutor(ctx, r.db).Exec(ctx, "DELETE FROM tickets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}
