package ports

import (
	"context"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type TransportRepo interface {
	Create(ctx context.Context, r *domain.TransportRequest) error
	GetByID(ctx context.Context, id string) (*domain.TransportRequest, error)
	GetByEvent(ctx context.Context, eventID string) (*domain.TransportRequest, error)
	List(ctx context.Context) ([]*domain.TransportRequest, error)
	Assign(ctx context.Context, id, userID string) error
	UpdateStatus(ctx context.Context, id string, status domain.TransportStatus) error
	// SaveConfig persists the whole config; expectedVersion guards against a
	// concurrent save (domain.ErrVersionConflict).
	SaveConfig(ctx context.Context, id string, cfg *domain.TransportConfig, expectedVersion int, status domain.TransportStatus) error
	// Finalize flips the request to configurado and writes the tickets in the
	// same transaction. A request already finalized fails with
	// domain.ErrRequestFinalized.
	Finalize(ctx context.Context, id string, finalizedAt time.Time, tickets []domain.Ticket) error
}

type TicketRepo interface {
	List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paidBy string, paidAt *time.Time) error
}
