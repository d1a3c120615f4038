package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
	UpsertConfirmation(ctx context.Context, c *domain.Confirmation) error
	DeleteConfirmation(ctx context.Context, eventID, userID string) error
	ListConfirmations(ctx context.Context, eventID string) ([]domain.Confirmation, error)
}

type AttendanceRepo interface {
	CreateSheet(ctx context.Context, sheet *domain.AttendanceSheet) error
	ListSheets(ctx context.Context) ([]*domain.AttendanceSheet, error)
	ListEntriesByUser(ctx context.Context, userID string) ([]domain.AttendanceEntry, error)
}
