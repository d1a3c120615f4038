package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TransportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTransportRepo(db *dbpg.DB) *TransportRepository {
	return &TransportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const transportColumns = `id, event_id, status, assigned_to, config, version, finalized_at, created_at, updated_at`

func (r *TransportRepository) Create(ctx context.Context, req *domain.TransportRequest) error {
	query := `INSERT INTO transport_requests (id, event_id, status, assigned_to, config, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	cfg, err := marshalConfig(req.Config)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		req.ID, req.EventID, req.Status, req.AssignedTo, cfg, req.Version, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrRequestExists
		}
		return fmt.Errorf("insert transport request: %w", err)
	}

	return nil
}

func (r *TransportRepository) GetByID(ctx context.Context, id string) (*domain.TransportRequest, error) {
	query := `SELECT ` + transportColumns + ` FROM transport_requests WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get transport request: %w", err)
	}

	return scanTransportRequest(row)
}

func (r *TransportRepository) GetByEvent(ctx context.Context, eventID string) (*domain.TransportRequest, error) {
	query := `SELECT ` + transportColumns + ` FROM transport_requests WHERE event_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get transport request by event: %w", err)
	}

	return scanTransportRequest(row)
}

func (r *TransportRepository) List(ctx context.Context) ([]*domain.TransportRequest, error) {
	query := `SELECT ` + transportColumns + ` FROM transport_requests ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list transport requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.TransportRequest
	for rows.Next() {
		req, err := scanTransportRequest(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, req)
	}

	return res, rows.Err()
}

func (r *TransportRepository) Assign(ctx context.Context, id, userID string) error {
	query := `UPDATE transport_requests
			  SET assigned_to=$2, status=$3, updated_at=now()
			  WHERE id=$1 AND status NOT IN ($4, $5)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, userID, domain.TransportStatusAssigned,
		domain.TransportStatusConfigured, domain.TransportStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("assign transport request: %w", err)
	}

	return r.checkRequestAffected(ctx, res, id)
}

func (r *TransportRepository) UpdateStatus(ctx context.Context, id string, status domain.TransportStatus) error {
	query := `UPDATE transport_requests SET status=$2, updated_at=now() WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update transport status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transport rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

// SaveConfig rewrites the whole config guarded by the version counter; a save
// against a stale version hits zero rows and maps to ErrVersionConflict.
func (r *TransportRepository) SaveConfig(
	ctx context.Context,
	id string,
	cfg *domain.TransportConfig,
	expectedVersion int,
	status domain.TransportStatus,
) error {
	raw, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	query := `UPDATE transport_requests
			  SET config=$2, status=$3, version=version+1, updated_at=now()
			  WHERE id=$1 AND version=$4 AND status NOT IN ($5, $6)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, raw, status, expectedVersion,
		domain.TransportStatusConfigured, domain.TransportStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("save transport config: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transport rows affected: %w", err)
	}
	if affected == 0 {
		return r.explainConfigWriteFailure(ctx, id, expectedVersion)
	}

	return nil
}

// Finalize flips the request to configurado and materializes its tickets in a
// single transaction: either the status change and every ticket land, or
// nothing does.
func (r *TransportRepository) Finalize(ctx context.Context, id string, finalizedAt time.Time, tickets []domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE transport_requests
			  SET status=$2, finalized_at=$3, updated_at=now()
			  WHERE id=$1 AND status NOT IN ($2, $4)`
	res, err := tx.ExecContext(
		ctx, query,
		id, domain.TransportStatusConfigured, finalizedAt, domain.TransportStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("finalize transport request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transport rows affected: %w", err)
	}
	if affected == 0 {
		var status domain.TransportStatus
		checkQuery := `SELECT status FROM transport_requests WHERE id=$1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			return domain.ErrRequestNotFound
		}
		return domain.ErrRequestFinalized
	}

	ticketQuery := `INSERT INTO tickets (id, request_id, event_id, passenger_name, passenger_type, vehicle_index, seat_number, price, payment_status, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, t := range tickets {
		ticketID := t.ID
		if ticketID == "" {
			ticketID = uuid.New().String()
		}
		if _, err = tx.ExecContext(
			ctx, ticketQuery,
			ticketID, t.RequestID, t.EventID, t.PassengerName, t.PassengerType,
			t.VehicleIndex, t.SeatNumber, t.Price, t.PaymentStatus, finalizedAt,
		); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	return tx.Commit()
}

func (r *TransportRepository) checkRequestAffected(ctx context.Context, res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transport rows affected: %w", err)
	}
	if affected == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM transport_requests WHERE id=$1`, id)
		if err != nil {
			return domain.ErrRequestNotFound
		}
		var status domain.TransportStatus
		if err := row.Scan(&status); err != nil {
			return domain.ErrRequestNotFound
		}
		return domain.ErrRequestFinalized
	}
	return nil
}

// explainConfigWriteFailure distinguishes missing request, finalized request
// and a plain stale version.
func (r *TransportRepository) explainConfigWriteFailure(ctx context.Context, id string, expectedVersion int) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status, version FROM transport_requests WHERE id=$1`, id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	var (
		status  domain.TransportStatus
		version int
	)
	if err := row.Scan(&status, &version); err != nil {
		return domain.ErrRequestNotFound
	}
	if status == domain.TransportStatusConfigured || status == domain.TransportStatusCompleted {
		return domain.ErrRequestFinalized
	}
	if version != expectedVersion {
		return domain.ErrVersionConflict
	}
	return domain.ErrRequestNotFound
}

func marshalConfig(cfg *domain.TransportConfig) ([]byte, error) {
	if cfg == nil {
		return nil, nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal transport config: %w", err)
	}
	return raw, nil
}

func scanTransportRequest(row rowScanner) (*domain.TransportRequest, error) {
	var (
		req        domain.TransportRequest
		assignedTo sql.NullString
		raw        []byte
	)
	if err := row.Scan(
		&req.ID, &req.EventID, &req.Status, &assignedTo, &raw,
		&req.Version, &req.FinalizedAt, &req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan transport request: %w", err)
	}
	req.AssignedTo = assignedTo.String
	if len(raw) > 0 {
		var cfg domain.TransportConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal transport config: %w", err)
		}
		req.Config = &cfg
	}
	return &req, nil
}
