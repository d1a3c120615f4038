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

type FinanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFinanceRepo(db *dbpg.DB) *FinanceRepository {
	return &FinanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const accountColumns = `id, user_id, user_name, account_number, card_number, balance, status, created_by, created_at`

func (r *FinanceRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO financial_accounts (` + accountColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.UserID, a.UserName, a.AccountNumber, a.CardNumber,
		a.Balance, a.Status, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *FinanceRepository) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM financial_accounts WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return scanAccount(row)
}

func (r *FinanceRepository) GetAccountByUser(ctx context.Context, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM financial_accounts WHERE user_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get account by user: %w", err)
	}

	return scanAccount(row)
}

func (r *FinanceRepository) ListAccounts(ctx context.Context, search string) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
			  FROM financial_accounts
			  WHERE $1 = ''
			     OR user_name ILIKE '%' || $1 || '%'
			     OR account_number LIKE '%' || $1 || '%'
			     OR card_number LIKE '%' || $1 || '%'
			  ORDER BY user_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, search)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// Apply locks the account row, re-checks the balance for withdrawals and
// writes the balance update plus the ledger record atomically. The lock
// closes the check-then-act window between two concurrent withdrawals.
func (r *FinanceRepository) Apply(ctx context.Context, t *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var balance float64
	lockQuery := `SELECT balance FROM financial_accounts WHERE id=$1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, t.AccountID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("lock account: %w", err)
	}

	t.BalanceBefore = balance
	switch t.Type {
	case domain.TransactionDeposit:
		t.BalanceAfter = domain.RoundMoney(balance + t.Amount)
	case domain.TransactionWithdrawal:
		if t.Amount > balance {
			return domain.ErrInsufficientBalance
		}
		t.BalanceAfter = domain.RoundMoney(balance - t.Amount)
	default:
		return fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, t.Type)
	}

	updateQuery := `UPDATE financial_accounts SET balance=$2 WHERE id=$1`
	if _, err = tx.ExecContext(ctx, updateQuery, t.AccountID, t.BalanceAfter); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	insertQuery := `INSERT INTO financial_transactions (id, account_id, user_id, type, amount, concept, balance_before, balance_after, created_by, authorized_by, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		t.ID, t.AccountID, t.UserID, t.Type, t.Amount, t.Concept,
		t.BalanceBefore, t.BalanceAfter, t.CreatedBy, nullString(t.AuthorizedBy), t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return tx.Commit()
}

func (r *FinanceRepository) ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	query := `SELECT id, account_id, user_id, type, amount, concept, balance_before, balance_after, created_by, authorized_by, created_at
			  FROM financial_transactions
			  WHERE account_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Transaction
	for rows.Next() {
		var (
			t            domain.Transaction
			authorizedBy sql.NullString
		)
		if err = rows.Scan(
			&t.ID, &t.AccountID, &t.UserID, &t.Type, &t.Amount, &t.Concept,
			&t.BalanceBefore, &t.BalanceAfter, &t.CreatedBy, &authorizedBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.AuthorizedBy = authorizedBy.String
		res = append(res, &t)
	}

	return res, rows.Err()
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(
		&a.ID, &a.UserID, &a.UserName, &a.AccountNumber, &a.CardNumber,
		&a.Balance, &a.Status, &a.CreatedBy, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &a, nil
}
