package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateRequests fans a concept out to every recipient: all quota requests
// and their notifications commit together.
func (r *PaymentRepository) CreateRequests(
	ctx context.Context,
	requests []*domain.PaymentRequest,
	notifications []*domain.PaymentNotification,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reqQuery := `INSERT INTO payment_requests (id, concept, description, amount, due_date, recipient_id, recipient_name, status, created_by, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, req := range requests {
		if _, err = tx.ExecContext(
			ctx, reqQuery,
			req.ID, req.Concept, req.Description, req.Amount, req.DueDate,
			req.RecipientID, req.RecipientName, req.Status, req.CreatedBy, req.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert payment request: %w", err)
		}
	}

	notifQuery := `INSERT INTO payment_notifications (id, request_id, user_id, concept, amount, status, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, n := range notifications {
		if _, err = tx.ExecContext(
			ctx, notifQuery,
			n.ID, n.RequestID, n.UserID, n.Concept, n.Amount, n.Status, n.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert payment notification: %w", err)
		}
	}

	return tx.Commit()
}

const paymentRequestColumns = `id, concept, description, amount, due_date, recipient_id, recipient_name, status, created_by, created_at`

func (r *PaymentRepository) ListRequests(ctx context.Context) ([]*domain.PaymentRequest, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests ORDER BY created_at DESC`
	return r.queryRequests(ctx, query)
}

func (r *PaymentRepository) ListRequestsByConcept(ctx context.Context, concept string) ([]*domain.PaymentRequest, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests WHERE concept=$1 ORDER BY recipient_name`
	return r.queryRequests(ctx, query, concept)
}

func (r *PaymentRepository) queryRequests(ctx context.Context, query string, args ...any) ([]*domain.PaymentRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payment requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentRequest
	for rows.Next() {
		var req domain.PaymentRequest
		if err = rows.Scan(
			&req.ID, &req.Concept, &req.Description, &req.Amount, &req.DueDate,
			&req.RecipientID, &req.RecipientName, &req.Status, &req.CreatedBy, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}

func (r *PaymentRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.PaymentNotification, error) {
	query := `SELECT id, request_id, user_id, concept, amount, status, created_at
			  FROM payment_notifications
			  WHERE user_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list payment notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentNotification
	for rows.Next() {
		var n domain.PaymentNotification
		if err = rows.Scan(&n.ID, &n.RequestID, &n.UserID, &n.Concept, &n.Amount, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment notification: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *PaymentRepository) AddPartialPayment(ctx context.Context, p *domain.PartialPayment) error {
	query := `INSERT INTO partial_payments (id, user_id, concept, amount, note, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.UserID, p.Concept, p.Amount, p.Note, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert partial payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) ListPartialPayments(ctx context.Context, concept string) ([]*domain.PartialPayment, error) {
	query := `SELECT id, user_id, concept, amount, note, created_by, created_at
			  FROM partial_payments
			  WHERE concept=$1
			  ORDER BY created_at`
	return r.queryPartials(ctx, query, concept)
}

func (r *PaymentRepository) ListPartialPaymentsByUser(ctx context.Context, userID string) ([]*domain.PartialPayment, error) {
	query := `SELECT id, user_id, concept, amount, note, created_by, created_at
			  FROM partial_payments
			  WHERE user_id=$1
			  ORDER BY created_at DESC`
	return r.queryPartials(ctx, query, userID)
}

func (r *PaymentRepository) queryPartials(ctx context.Context, query string, args ...any) ([]*domain.PartialPayment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partial payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.PartialPayment
	for rows.Next() {
		var p domain.PartialPayment
		if err = rows.Scan(&p.ID, &p.UserID, &p.Concept, &p.Amount, &p.Note, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partial payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
