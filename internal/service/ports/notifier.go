package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

// Notifier pushes out-of-band alerts; implementations must be safe to call
// from goroutines and must not fail the triggering operation.
type Notifier interface {
	NotifyTicketsIssued(ctx context.Context, event *domain.Event, tickets []domain.Ticket)
	NotifySolicitudResolved(ctx context.Context, user *domain.User, s *domain.SolicitudInsumo)
	NotifyPaymentRequested(ctx context.Context, user *domain.User, n *domain.PaymentNotification)
	NotifyLowStock(ctx context.Context, items []*domain.Insumo)
}
