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

func TestTicketService_List_TalliesRevenue(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, log)

	tickets := []*domain.Ticket{
		{ID: "t1", Price: 150, PaymentStatus: domain.PaymentStatusPaid},
		{ID: "t2", Price: 150, PaymentStatus: domain.PaymentStatusPending},
		{ID: "t3", Price: 200, PaymentStatus: domain.PaymentStatusPaid},
	}
	ticketRepo.EXPECT().List(mock.Anything, domain.TicketFilter{}).Return(tickets, nil)

	listing, err := svc.List(context.Background(), domain.TicketFilter{})

	require.NoError(t, err)
	assert.Len(t, listing.Tickets, 3)
	assert.Equal(t, 2, listing.Revenue.PaidCount)
	assert.Equal(t, 350.0, listing.Revenue.PaidTotal)
	assert.Equal(t, 150.0, listing.Revenue.PendingTotal)
}

func TestTicketService_MarkPaid_Success(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, log)

	ticket := &domain.Ticket{ID: "t1", PaymentStatus: domain.PaymentStatusPending}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	ticketRepo.EXPECT().
		SetPaymentStatus(mock.Anything, "t1", domain.PaymentStatusPaid, "admin1", mock.Anything).
		Return(nil)

	err := svc.MarkPaid(context.Background(), "t1", "admin1")

	require.NoError(t, err)
}

func TestTicketService_MarkPaid_AlreadyPaid(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, log)

	ticket := &domain.Ticket{ID: "t1", PaymentStatus: domain.PaymentStatusPaid}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	err := svc.MarkPaid(context.Background(), "t1", "admin1")

	require.NoError(t, err)
}

func TestTicketService_MarkPaid_NotFound(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, log)

	ticketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	err := svc.MarkPaid(context.Background(), "missing", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_MarkPending_Reverts(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, log)

	ticketRepo.EXPECT().
		SetPaymentStatus(mock.Anything, "t1", domain.PaymentStatusPending, "", (*time.Time)(nil)).
		Return(nil)

	err := svc.MarkPending(context.Background(), "t1")

	require.NoError(t, err)
}
