package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const ticketColumns = `id, request_id, event_id, passenger_name, passenger_type, vehicle_index, seat_number, price, payment_status, paid_at, paid_by, created_at`

func (r *TicketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE ($1 = '' OR event_id::text = $1)
			    AND ($2 = '' OR payment_status = $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.EventID, string(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicket(row)
}

func (r *TicketRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paidBy string, paidAt *time.Time) error {
	query := `UPDATE tickets SET payment_status=$2, paid_by=$3, paid_at=$4 WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, nullString(paidBy), paidAt)
	if err != nil {
		return fmt.Errorf("update ticket payment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ticket rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var (
		t      domain.Ticket
		paidBy sql.NullString
	)
	if err := row.Scan(
		&t.ID, &t.RequestID, &t.EventID, &t.PassengerName, &t.PassengerType,
		&t.VehicleIndex, &t.SeatNumber, &t.Price, &t.PaymentStatus,
		&t.PaidAt, &paidBy, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	t.PaidBy = paidBy.String
	return &t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
