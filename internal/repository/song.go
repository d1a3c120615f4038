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

type SongRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSongRepo(db *dbpg.DB) *SongRepository {
	return &SongRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const songColumns = `id, title, author, lyrics, instrumentation, created_by, created_at, updated_at`

func (r *SongRepository) Create(ctx context.Context, s *domain.Song) error {
	query := `INSERT INTO songs (` + songColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.Author, s.Lyrics, s.Instrumentation,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}

	return nil
}

func (r *SongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}

	return scanSong(row)
}

func (r *SongRepository) List(ctx context.Context) ([]*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var res []*domain.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SongRepository) Update(ctx context.Context, s *domain.Song) error {
	query := `UPDATE songs
			  SET title=$2, author=$3, lyrics=$4, instrumentation=$5, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.Author, s.Lyrics, s.Instrumentation,
	)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("song rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSongNotFound
	}

	return nil
}

func scanSong(row rowScanner) (*domain.Song, error) {
	var s domain.Song
	if err := row.Scan(
		&s.ID, &s.Title, &s.Author, &s.Lyrics, &s.Instrumentation,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, fmt.Errorf("scan song: %w", err)
	}
	return &s, nil
}
