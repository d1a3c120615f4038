package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Documento) error
	GetByID(ctx context.Context, id string) (*domain.Documento, error)
	List(ctx context.Context) ([]*domain.Documento, error)
	ListDeliveries(ctx context.Context, documentID string) ([]domain.DocumentDelivery, error)
	// ToggleDelivery flips one member's delivery mark and re-derives estado in
	// the same transaction. Returns the new delivered state.
	ToggleDelivery(ctx context.Context, documentID, userID string) (bool, error)
	// CreateVersion inserts the next version linked to its predecessor.
	CreateVersion(ctx context.Context, next *domain.Documento) error
}

type EvaluationRepo interface {
	Upsert(ctx context.Context, e *domain.UserEvaluation) error
	GetByUser(ctx context.Context, userID string) (*domain.UserEvaluation, error)
	List(ctx context.Context) ([]*domain.UserEvaluation, error)
}

type SongRepo interface {
	Create(ctx context.Context, s *domain.Song) error
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.Song, error)
	Update(ctx context.Context, s *domain.Song) error
}
