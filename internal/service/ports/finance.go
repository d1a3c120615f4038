package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type FinanceRepo interface {
	CreateAccount(ctx context.Context, a *domain.Account) error
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByUser(ctx context.Context, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, search string) ([]*domain.Account, error)
	// Apply re-reads the balance under a row lock, re-checks withdrawals
	// against it and writes the balance update plus the transaction record
	// atomically.
	Apply(ctx context.Context, t *domain.Transaction) error
	ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

type PaymentRepo interface {
	// CreateRequests writes all quota requests and their notifications in one
	// transaction.
	CreateRequests(ctx context.Context, requests []*domain.PaymentRequest, notifications []*domain.PaymentNotification) error
	ListRequests(ctx context.Context) ([]*domain.PaymentRequest, error)
	ListRequestsByConcept(ctx context.Context, concept string) ([]*domain.PaymentRequest, error)
	ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.PaymentNotification, error)
	AddPartialPayment(ctx context.Context, p *domain.PartialPayment) error
	ListPartialPayments(ctx context.Context, concept string) ([]*domain.PartialPayment, error)
	ListPartialPaymentsByUser(ctx context.Context, userID string) ([]*domain.PartialPayment, error)
}
