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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, status, requires_transport, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Status,
		e.RequiresTransport, e.CreatedBy, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, event_date, status, requires_transport, created_by, created_at, updated_at
			  FROM events
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Status,
		&e.RequiresTransport, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, event_date, status, requires_transport, created_by, created_at, updated_at
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Status,
			&e.RequiresTransport, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status=$2, updated_at=now() WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// UpsertConfirmation replaces a member's previous RSVP atomically; concurrent
// confirmations for different members never overwrite each other.
func (r *EventRepository) UpsertConfirmation(ctx context.Context, c *domain.Confirmation) error {
	query := `INSERT INTO event_confirmations (event_id, user_id, user_name, response, companions, confirmed_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (event_id, user_id) DO UPDATE
			  SET user_name=EXCLUDED.user_name,
			      response=EXCLUDED.response,
			      companions=EXCLUDED.companions,
			      confirmed_at=EXCLUDED.confirmed_at`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.EventID, c.UserID, c.UserName, c.Response, c.Companions, c.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert confirmation: %w", err)
	}

	return nil
}

func (r *EventRepository) DeleteConfirmation(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_confirmations WHERE event_id=$1 AND user_id=$2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete confirmation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirmation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrConfirmationNotFound
	}

	return nil
}

func (r *EventRepository) ListConfirmations(ctx context.Context, eventID string) ([]domain.Confirmation, error) {
	query := `SELECT event_id, user_id, user_name, response, companions, confirmed_at
			  FROM event_confirmations
			  WHERE event_id=$1
			  ORDER BY confirmed_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}
	defer rows.Close()

	var res []domain.Confirmation
	for rows.Next() {
		var c domain.Confirmation
		if err = rows.Scan(&c.EventID, &c.UserID, &c.UserName, &c.Response, &c.Companions, &c.ConfirmedAt); err != nil {
			return nil, fmt.Errorf("scan confirmation: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
