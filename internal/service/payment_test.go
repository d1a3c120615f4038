package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports/mocks"
)

func TestPaymentService_CreateConcept_FansOut(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	ana := &domain.User{ID: "u1", Name: "Ana"}
	luis := &domain.User{ID: "u2", Name: "Luis"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(ana, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(luis, nil)

	var gotRequests []*domain.PaymentRequest
	var gotNotifications []*domain.PaymentNotification
	paymentRepo.EXPECT().
		CreateRequests(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, requests []*domain.PaymentRequest, notifications []*domain.PaymentNotification) {
			gotRequests = requests
			gotNotifications = notifications
		}).
		Return(nil)
	notifier.EXPECT().NotifyPaymentRequested(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)

	requests, err := svc.CreateConcept(context.Background(), domain.CreatePaymentRequestInput{
		Concept:     "Uniformes 2026",
		Description: "Capa y sombrero",
		Quotas: []domain.Quota{
			{UserID: "u1", Amount: 800},
			{UserID: "u2", Amount: 650.505},
		},
		CreatedBy: "admin1",
	})

	require.NoError(t, err)
	require.Len(t, requests, 2)
	require.Len(t, gotRequests, 2)
	require.Len(t, gotNotifications, 2)

	assert.Equal(t, "Uniformes 2026", gotRequests[0].Concept)
	assert.Equal(t, "Ana", gotRequests[0].RecipientName)
	assert.Equal(t, domain.PaymentRequestActive, gotRequests[0].Status)
	assert.Equal(t, 650.51, gotRequests[1].Amount)

	assert.Equal(t, gotRequests[0].ID, gotNotifications[0].RequestID)
	assert.Equal(t, domain.PaymentRequestPending, gotNotifications[0].Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_CreateConcept_EmptyConcept(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	_, err := svc.CreateConcept(context.Background(), domain.CreatePaymentRequestInput{
		Concept: "  ",
		Quotas:  []domain.Quota{{UserID: "u1", Amount: 100}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_CreateConcept_NoQuotas(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	_, err := svc.CreateConcept(context.Background(), domain.CreatePaymentRequestInput{
		Concept: "Uniformes",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_CreateConcept_UnknownRecipient(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateConcept(context.Background(), domain.CreatePaymentRequestInput{
		Concept: "Uniformes",
		Quotas:  []domain.Quota{{UserID: "missing", Amount: 100}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPaymentService_RecordPartial_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	paymentRepo.EXPECT().AddPartialPayment(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.RecordPartial(context.Background(), "u1", "Uniformes", 200, "primer abono", "admin1")

	require.NoError(t, err)
	assert.Equal(t, 200.0, p.Amount)
	assert.Equal(t, "Uniformes", p.Concept)
	assert.NotEmpty(t, p.ID)
}

func TestPaymentService_RecordPartial_InvalidAmount(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	_, err := svc.RecordPartial(context.Background(), "u1", "Uniformes", 0, "", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_ConceptProgress_Reconciles(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	requests := []*domain.PaymentRequest{
		{ID: "r1", Concept: "Uniformes", Amount: 800, RecipientID: "u1", RecipientName: "Ana"},
		{ID: "r2", Concept: "Uniformes", Amount: 800, RecipientID: "u2", RecipientName: "Luis"},
	}
	partials := []*domain.PartialPayment{
		{UserID: "u1", Concept: "Uniformes", Amount: 500},
		{UserID: "u1", Concept: "Uniformes", Amount: 300},
		{UserID: "u2", Concept: "Uniformes", Amount: 100},
	}

	paymentRepo.EXPECT().ListRequestsByConcept(mock.Anything, "Uniformes").Return(requests, nil)
	paymentRepo.EXPECT().ListPartialPayments(mock.Anything, "Uniformes").Return(partials, nil)

	progress, err := svc.ConceptProgress(context.Background(), "Uniformes")

	require.NoError(t, err)
	assert.Equal(t, 2, progress.TotalQuotas)
	assert.Equal(t, 1, progress.CompletedQuotas)
	assert.Equal(t, 1600.0, progress.TotalDue)
	assert.Equal(t, 900.0, progress.TotalPaid)
	assert.Equal(t, 50, progress.CompletedPercent)

	require.Len(t, progress.Quotas, 2)
	assert.True(t, progress.Quotas[0].Complete)
	assert.Equal(t, 700.0, progress.Quotas[1].Remaining)
}

func TestPaymentService_ConceptProgress_UnknownConcept(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, userRepo, notifier, log)

	paymentRepo.EXPECT().ListRequestsByConcept(mock.Anything, "Nada").Return(nil, nil)

	_, err := svc.ConceptProgress(context.Background(), "Nada")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRequestNotFound)
}
