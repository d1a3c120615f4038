package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	userRepo    ports.UserRepo
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateConcept fans a payment concept out to its recipients: one request and
// one notification per quota, committed together.
func (s *PaymentService) CreateConcept(ctx context.Context, input domain.CreatePaymentRequestInput) ([]*domain.PaymentRequest, error) {
	concept := strings.TrimSpace(input.Concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: concept is required", domain.ErrValidation)
	}
	if len(input.Quotas) == 0 {
		return nil, fmt.Errorf("%w: at least one quota is required", domain.ErrValidation)
	}

	users := make([]*domain.User, 0, len(input.Quotas))
	now := time.Now().UTC()
	requests := make([]*domain.PaymentRequest, 0, len(input.Quotas))
	notifications := make([]*domain.PaymentNotification, 0, len(input.Quotas))
	for _, q := range input.Quotas {
		if q.Amount <= 0 {
			return nil, fmt.Errorf("%w: quota amount must be positive", domain.ErrValidation)
		}
		user, err := s.userRepo.GetByID(ctx, q.UserID)
		if err != nil {
			return nil, fmt.Errorf("get recipient: %w", err)
		}
		users = append(users, user)

		req := &domain.PaymentRequest{
			ID:            uuid.New().String(),
			Concept:       concept,
			Description:   input.Description,
			Amount:        domain.RoundMoney(q.Amount),
			DueDate:       input.DueDate,
			RecipientID:   user.ID,
			RecipientName: user.Name,
			Status:        domain.PaymentRequestActive,
			CreatedBy:     input.CreatedBy,
			CreatedAt:     now,
		}
		requests = append(requests, req)
		notifications = append(notifications, &domain.PaymentNotification{
			ID:        uuid.New().String(),
			RequestID: req.ID,
			UserID:    user.ID,
			Concept:   concept,
			Amount:    req.Amount,
			Status:    domain.PaymentRequestPending,
			CreatedAt: now,
		})
	}

	if err := s.paymentRepo.CreateRequests(ctx, requests, notifications); err != nil {
		return nil, fmt.Errorf("create payment requests: %w", err)
	}

	s.logger.Info("payment concept created",
		logger.String("concept", concept),
		logger.Int("quotas", len(requests)),
	)

	go s.notifyRequested(context.WithoutCancel(ctx), users, notifications)

	return requests, nil
}

func (s *PaymentService) notifyRequested(ctx context.Context, users []*domain.User, notifications []*domain.PaymentNotification) {
	for i, n := range notifications {
		s.notifier.NotifyPaymentRequested(ctx, users[i], n)
	}
}

func (s *PaymentService) ListRequests(ctx context.Context) ([]*domain.PaymentRequest, error) {
	return s.paymentRepo.ListRequests(ctx)
}

func (s *PaymentService) ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.PaymentNotification, error) {
	return s.paymentRepo.ListNotificationsByUser(ctx, userID)
}

// RecordPartial books a partial payment against a member's quota for a
// concept. Nothing caps the amount; overpaid quotas simply show as complete.
func (s *PaymentService) RecordPartial(ctx context.Context, userID, concept string, amount float64, note, createdBy string) (*domain.PartialPayment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: concept is required", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	p := &domain.PartialPayment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Concept:   concept,
		Amount:    domain.RoundMoney(amount),
		Note:      note,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.paymentRepo.AddPartialPayment(ctx, p); err != nil {
		return nil, fmt.Errorf("add partial payment: %w", err)
	}

	s.logger.Info("partial payment recorded",
		logger.String("user_id", userID),
		logger.String("concept", concept),
		logger.Any("amount", p.Amount),
	)

	return p, nil
}

// ConceptProgress reconciles a concept's quotas against the partial payments
// booked so far.
func (s *PaymentService) ConceptProgress(ctx context.Context, concept string) (*domain.ConceptProgress, error) {
	requests, err := s.paymentRepo.ListRequestsByConcept(ctx, concept)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if len(requests) == 0 {
		return nil, domain.ErrPaymentRequestNotFound
	}

	partials, err := s.paymentRepo.ListPartialPayments(ctx, concept)
	if err != nil {
		return nil, fmt.Errorf("list partial payments: %w", err)
	}

	paidByUser := make(map[string]float64)
	for _, p := range partials {
		paidByUser[p.UserID] += p.Amount
	}

	progress := domain.ProgressFor(concept, requests, paidByUser)
	return &progress, nil
}

func (s *PaymentService) ListPartialsByUser(ctx context.Context, userID string) ([]*domain.PartialPayment, error) {
	return s.paymentRepo.ListPartialPaymentsByUser(ctx, userID)
}
