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

type EventService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	logger    logger.Logger
}

func NewEventService(eventRepo ports.EventRepo, userRepo ports.UserRepo, logger logger.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Date:              input.Date,
		Status:            domain.EventStatusOpen,
		RequiresTransport: input.RequiresTransport,
		CreatedBy:         input.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	confirmations, err := s.eventRepo.ListConfirmations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}

	return &domain.EventDetails{
		Event:         *event,
		Confirmations: confirmations,
		Summary:       domain.Summarize(confirmations),
	}, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventService) SetStatus(ctx context.Context, id string, status domain.EventStatus) error {
	if !domain.ValidEventStatus(status) {
		return fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, status)
	}

	if err := s.eventRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	s.logger.Info("event status changed",
		logger.String("event_id", id),
		logger.String("status", string(status)),
	)

	return nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))

	return nil
}

// Confirm records a member's RSVP. Re-confirming replaces the previous
// answer; companions only make sense on an attending answer.
func (s *EventService) Confirm(ctx context.Context, eventID, userID string, response domain.ConfirmationResponse, companions int) (*domain.Confirmation, error) {
	if !domain.ValidConfirmationResponse(response) {
		return nil, fmt.Errorf("%w: unknown response %q", domain.ErrValidation, response)
	}
	if companions < 0 {
		return nil, fmt.Errorf("%w: companions must not be negative", domain.ErrValidation)
	}
	if response != domain.ResponseAttending {
		companions = 0
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusOpen {
		return nil, domain.ErrEventClosed
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	confirmation := &domain.Confirmation{
		EventID:     eventID,
		UserID:      userID,
		UserName:    user.Name,
		Response:    response,
		Companions:  companions,
		ConfirmedAt: time.Now().UTC(),
	}
	if err = s.eventRepo.UpsertConfirmation(ctx, confirmation); err != nil {
		return nil, fmt.Errorf("upsert confirmation: %w", err)
	}

	s.logger.Info("confirmation recorded",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("response", string(response)),
		logger.Int("companions", companions),
	)

	return confirmation, nil
}

// Withdraw removes a member's RSVP while the event is still open.
func (s *EventService) Withdraw(ctx context.Context, eventID, userID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusOpen {
		return domain.ErrEventClosed
	}

	if err = s.eventRepo.DeleteConfirmation(ctx, eventID, userID); err != nil {
		return fmt.Errorf("delete confirmation: %w", err)
	}

	s.logger.Info("confirmation withdrawn",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}
