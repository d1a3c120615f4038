package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfiles(ctx context.Context, id string, profiles []string) error
}
