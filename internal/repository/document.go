package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type DocumentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDocumentRepo(db *dbpg.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const documentColumns = `id, titulo, descripcion, required_user_ids, estado, version, previous_version_id, created_by, created_at, updated_at`

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Documento) error {
	query := `INSERT INTO documentos (` + documentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		d.ID, d.Titulo, d.Descripcion, pq.Array(d.RequiredUserIDs), d.Estado,
		d.Version, nullString(d.PreviousVersionID), d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}

	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Documento, error) {
	query := `SELECT ` + documentColumns + ` FROM documentos WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get documento: %w", err)
	}

	return scanDocumento(row)
}

func (r *DocumentRepository) List(ctx context.Context) ([]*domain.Documento, error) {
	query := `SELECT ` + documentColumns + ` FROM documentos ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	var res []*domain.Documento
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *DocumentRepository) ListDeliveries(ctx context.Context, documentID string) ([]domain.DocumentDelivery, error) {
	query := `SELECT document_id, user_id, fecha
			  FROM document_deliveries
			  WHERE document_id=$1
			  ORDER BY fecha`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var res []domain.DocumentDelivery
	for rows.Next() {
		var d domain.DocumentDelivery
		if err = rows.Scan(&d.DocumentID, &d.UserID, &d.Fecha); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

// ToggleDelivery flips one member's delivery mark and re-derives the document
// estado from the full delivery set, all in one transaction.
func (r *DocumentRepository) ToggleDelivery(ctx context.Context, documentID, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var required []string
	lockQuery := `SELECT required_user_ids FROM documentos WHERE id=$1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, documentID).Scan(pq.Array(&required)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrDocumentNotFound
		}
		return false, fmt.Errorf("lock documento: %w", err)
	}

	deleteQuery := `DELETE FROM document_deliveries WHERE document_id=$1 AND user_id=$2`
	res, err := tx.ExecContext(ctx, deleteQuery, documentID, userID)
	if err != nil {
		return false, fmt.Errorf("delete delivery: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delivery rows affected: %w", err)
	}

	delivered := deleted == 0
	if delivered {
		insertQuery := `INSERT INTO document_deliveries (document_id, user_id, fecha) VALUES ($1, $2, now())`
		if _, err = tx.ExecContext(ctx, insertQuery, documentID, userID); err != nil {
			return false, fmt.Errorf("insert delivery: %w", err)
		}
	}

	deliveredSet := make(map[string]struct{})
	listQuery := `SELECT user_id FROM document_deliveries WHERE document_id=$1`
	rows, err := tx.QueryContext(ctx, listQuery, documentID)
	if err != nil {
		return false, fmt.Errorf("list deliveries: %w", err)
	}
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return false, fmt.Errorf("scan delivery: %w", err)
		}
		deliveredSet[id] = struct{}{}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("list deliveries: %w", err)
	}

	estado := domain.DeriveDocumentStatus(required, deliveredSet)
	updateQuery := `UPDATE documentos SET estado=$2, updated_at=now() WHERE id=$1`
	if _, err = tx.ExecContext(ctx, updateQuery, documentID, estado); err != nil {
		return false, fmt.Errorf("update documento estado: %w", err)
	}

	return delivered, tx.Commit()
}

// CreateVersion inserts the next version linked to its predecessor. The new
// version starts pendiente with no deliveries.
func (r *DocumentRepository) CreateVersion(ctx context.Context, next *domain.Documento) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var prevVersion int
	checkQuery := `SELECT version FROM documentos WHERE id=$1`
	if err = tx.QueryRowContext(ctx, checkQuery, next.PreviousVersionID).Scan(&prevVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("get previous version: %w", err)
	}
	next.Version = prevVersion + 1

	insertQuery := `INSERT INTO documentos (` + documentColumns + `)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		next.ID, next.Titulo, next.Descripcion, pq.Array(next.RequiredUserIDs), next.Estado,
		next.Version, nullString(next.PreviousVersionID), next.CreatedBy, next.CreatedAt, next.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert documento version: %w", err)
	}

	return tx.Commit()
}

func scanDocumento(row rowScanner) (*domain.Documento, error) {
	var (
		d          domain.Documento
		previousID sql.NullString
	)
	if err := row.Scan(
		&d.ID, &d.Titulo, &d.Descripcion, pq.Array(&d.RequiredUserIDs), &d.Estado,
		&d.Version, &previousID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("scan documento: %w", err)
	}
	d.PreviousVersionID = previousID.String
	return &d, nil
}
