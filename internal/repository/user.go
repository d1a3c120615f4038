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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, profiles, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, pq.Array(user.Profiles),
		user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, profiles, telegram_chat_id, created_at
			  FROM users
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, profiles, telegram_chat_id, created_at
			  FROM users
			  WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, email, profiles, telegram_chat_id, created_at
			  FROM users
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, pq.Array(&u.Profiles), &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) UpdateProfiles(ctx context.Context, id string, profiles []string) error {
	query := `UPDATE users SET profiles=$2 WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, pq.Array(profiles))
	if err != nil {
		return fmt.Errorf("update profiles: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profiles rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, pq.Array(&u.Profiles), &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
