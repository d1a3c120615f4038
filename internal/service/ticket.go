package service

import (
	"context"
	"fmt"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TicketService struct {
	ticketRepo ports.TicketRepo
	logger     logger.Logger
}

func NewTicketService(ticketRepo ports.TicketRepo, logger logger.Logger) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// TicketListing is the sales view: the filtered tickets plus their revenue
// tally.
type TicketListing struct {
	Tickets []*domain.Ticket     `json:"tickets"`
	Revenue domain.TicketRevenue `json:"revenue"`
}

func (s *TicketService) List(ctx context.Context, filter domain.TicketFilter) (*TicketListing, error) {
	tickets, err := s.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	return &TicketListing{
		Tickets: tickets,
		Revenue: domain.Revenue(tickets),
	}, nil
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

// MarkPaid records who collected the payment and when.
func (s *TicketService) MarkPaid(ctx context.Context, id, collectedBy string) error {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get ticket: %w", err)
	}
	if ticket.PaymentStatus == domain.PaymentStatusPaid {
		return nil
	}

	now := time.Now().UTC()
	if err = s.ticketRepo.SetPaymentStatus(ctx, id, domain.PaymentStatusPaid, collectedBy, &now); err != nil {
		return fmt.Errorf("mark ticket paid: %w", err)
	}

	s.logger.Info("ticket paid",
		logger.String("ticket_id", id),
		logger.String("collected_by", collectedBy),
	)

	return nil
}

// MarkPending reverts a mistaken payment mark.
func (s *TicketService) MarkPending(ctx context.Context, id string) error {
	if err := s.ticketRepo.SetPaymentStatus(ctx, id, domain.PaymentStatusPending, "", nil); err != nil {
		return fmt.Errorf("mark ticket pending: %w", err)
	}

	s.logger.Info("ticket payment reverted", logger.String("ticket_id", id))

	return nil
}
