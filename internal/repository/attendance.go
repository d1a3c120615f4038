package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateSheet writes the roll call and all its entries in one transaction.
func (r *AttendanceRepository) CreateSheet(ctx context.Context, sheet *domain.AttendanceSheet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO attendance_sheets (id, sheet_date, sheet_type, taken_by, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, sheet.ID, sheet.Date, sheet.Type, sheet.TakenBy, sheet.CreatedAt); err != nil {
		return fmt.Errorf("insert sheet: %w", err)
	}

	entryQuery := `INSERT INTO attendance_entries (sheet_id, user_id, user_name, status)
				   VALUES ($1, $2, $3, $4)`
	for _, e := range sheet.Entries {
		if _, err = tx.ExecContext(ctx, entryQuery, sheet.ID, e.UserID, e.UserName, e.Status); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	return tx.Commit()
}

func (r *AttendanceRepository) ListSheets(ctx context.Context) ([]*domain.AttendanceSheet, error) {
	query := `SELECT s.id, s.sheet_date, s.sheet_type, s.taken_by, s.created_at,
				     e.user_id, e.user_name, e.status
			  FROM attendance_sheets s
			  JOIN attendance_entries e ON e.sheet_id = s.id
			  ORDER BY s.sheet_date DESC, s.id, e.user_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var res []*domain.AttendanceSheet
	byID := make(map[string]*domain.AttendanceSheet)
	for rows.Next() {
		var (
			s domain.AttendanceSheet
			e domain.AttendanceEntry
		)
		if err = rows.Scan(&s.ID, &s.Date, &s.Type, &s.TakenBy, &s.CreatedAt, &e.UserID, &e.UserName, &e.Status); err != nil {
			return nil, fmt.Errorf("scan sheet: %w", err)
		}
		sheet, ok := byID[s.ID]
		if !ok {
			sheet = &s
			byID[s.ID] = sheet
			res = append(res, sheet)
		}
		e.SheetID = sheet.ID
		sheet.Entries = append(sheet.Entries, e)
	}

	return res, rows.Err()
}

func (r *AttendanceRepository) ListEntriesByUser(ctx context.Context, userID string) ([]domain.AttendanceEntry, error) {
	query := `SELECT sheet_id, user_id, user_name, status
			  FROM attendance_entries
			  WHERE user_id=$1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var res []domain.AttendanceEntry
	for rows.Next() {
		var e domain.AttendanceEntry
		if err = rows.Scan(&e.SheetID, &e.UserID, &e.UserName, &e.Status); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
