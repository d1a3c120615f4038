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

func newTransportService(t *testing.T) (*TransportService, *mocks.MockTransportRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	transportRepo := mocks.NewMockTransportRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewTransportService(transportRepo, eventRepo, userRepo, notifier, newTestLogger(t))
	return svc, transportRepo, eventRepo, userRepo, notifier
}

func TestTransportService_CreateRequest_Success(t *testing.T) {
	svc, transportRepo, eventRepo, _, _ := newTransportService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusOpen, RequiresTransport: true}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	transportRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	req, err := svc.CreateRequest(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", req.EventID)
	assert.Equal(t, domain.TransportStatusPending, req.Status)
	assert.NotEmpty(t, req.ID)
}

func TestTransportService_CreateRequest_NoTransportNeeded(t *testing.T) {
	svc, _, eventRepo, _, _ := newTransportService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusOpen, RequiresTransport: false}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.CreateRequest(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransportService_CreateRequest_EventClosed(t *testing.T) {
	svc, _, eventRepo, _, _ := newTransportService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusFinished, RequiresTransport: true}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.CreateRequest(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestTransportService_Assign_Forbidden(t *testing.T) {
	svc, _, _, userRepo, _ := newTransportService(t)

	member := &domain.User{ID: "u1", Profiles: []string{domain.ProfileMember}}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)

	err := svc.Assign(context.Background(), "r1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTransportService_Assign_SeedsConfig(t *testing.T) {
	svc, transportRepo, _, userRepo, _ := newTransportService(t)

	manager := &domain.User{ID: "u1", Profiles: []string{domain.ProfileTransport}}
	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusPending}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(manager, nil)
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	transportRepo.EXPECT().Assign(mock.Anything, "r1", "u1").Return(nil)
	transportRepo.EXPECT().
		SaveConfig(mock.Anything, "r1", mock.Anything, 0, domain.TransportStatusAssigned).
		Return(nil)

	err := svc.Assign(context.Background(), "r1", "u1")

	require.NoError(t, err)
}

func TestTransportService_Assign_AlreadyFinalized(t *testing.T) {
	svc, transportRepo, _, userRepo, _ := newTransportService(t)

	manager := &domain.User{ID: "u1", Profiles: []string{domain.ProfileAdmin}}
	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusConfigured}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(manager, nil)
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)

	err := svc.Assign(context.Background(), "r1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
}

func TestTransportService_AssignSeat_Success(t *testing.T) {
	svc, transportRepo, eventRepo, _, _ := newTransportService(t)

	req := &domain.TransportRequest{
		ID:      "r1",
		EventID: "e1",
		Status:  domain.TransportStatusAssigned,
		Config:  domain.NewTransportConfig(),
	}
	confirmations := []domain.Confirmation{
		{EventID: "e1", UserID: "u1", UserName: "Ana", Response: domain.ResponseAttending, Companions: 1},
	}

	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	eventRepo.EXPECT().ListConfirmations(mock.Anything, "e1").Return(confirmations, nil)
	transportRepo.EXPECT().
		SaveConfig(mock.Anything, "r1", mock.Anything, 0, domain.TransportStatusSaved).
		Return(nil)

	err := svc.AssignSeat(context.Background(), "r1", 0, 0, "Ana")

	require.NoError(t, err)
	assert.Equal(t, 1, req.Config.TotalOccupied())
	assert.Equal(t, "Ana", req.Config.Vehicles[0].Seats[0].PassengerName)
}

func TestTransportService_AssignSeat_NotInPool(t *testing.T) {
	svc, transportRepo, eventRepo, _, _ := newTransportService(t)

	req := &domain.TransportRequest{
		ID:      "r1",
		EventID: "e1",
		Status:  domain.TransportStatusAssigned,
		Config:  domain.NewTransportConfig(),
	}
	confirmations := []domain.Confirmation{
		{EventID: "e1", UserID: "u1", UserName: "Ana", Response: domain.ResponseAttending},
	}

	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	eventRepo.EXPECT().ListConfirmations(mock.Anything, "e1").Return(confirmations, nil)

	err := svc.AssignSeat(context.Background(), "r1", 0, 0, "Desconocido")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPassengerNotInPool)
}

func TestTransportService_AssignSeat_SeatOccupied(t *testing.T) {
	svc, transportRepo, eventRepo, _, _ := newTransportService(t)

	cfg := domain.NewTransportConfig()
	require.NoError(t, cfg.Assign(0, 0, domain.Passenger{Name: "Luis", Type: domain.PassengerMember, Attendee: "Luis"}))

	req := &domain.TransportRequest{
		ID:      "r1",
		EventID: "e1",
		Status:  domain.TransportStatusSaved,
		Config:  cfg,
	}
	confirmations := []domain.Confirmation{
		{EventID: "e1", UserID: "u1", UserName: "Ana", Response: domain.ResponseAttending},
		{EventID: "e1", UserID: "u2", UserName: "Luis", Response: domain.ResponseAttending},
	}

	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	eventRepo.EXPECT().ListConfirmations(mock.Anything, "e1").Return(confirmations, nil)

	err := svc.AssignSeat(context.Background(), "r1", 0, 0, "Ana")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatOccupied)
}

func TestTransportService_SetCosts_NegativeTotal(t *testing.T) {
	svc, _, _, _, _ := newTransportService(t)

	err := svc.SetCosts(context.Background(), "r1", -100, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransportService_Finalize_Success(t *testing.T) {
	svc, transportRepo, eventRepo, _, notifier := newTransportService(t)

	cfg := domain.NewTransportConfig()
	cfg.TotalCost = 300
	require.NoError(t, cfg.Assign(0, 0, domain.Passenger{Name: "Ana", Type: domain.PassengerMember, Attendee: "Ana"}))
	require.NoError(t, cfg.Assign(0, 1, domain.Passenger{Name: "Acompañante de Ana #1", Type: domain.PassengerCompanion, Attendee: "Ana"}))

	req := &domain.TransportRequest{
		ID:      "r1",
		EventID: "e1",
		Status:  domain.TransportStatusSaved,
		Config:  cfg,
	}
	event := &domain.Event{ID: "e1", Title: "Callejoneada"}

	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	transportRepo.EXPECT().Finalize(mock.Anything, "r1", mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyTicketsIssued(mock.Anything, event, mock.Anything).Return()

	tickets, err := svc.Finalize(context.Background(), "r1")

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, 150.0, tickets[0].Price)
	assert.Equal(t, domain.PaymentStatusPending, tickets[0].PaymentStatus)
	assert.NotEmpty(t, tickets[0].ID)
	assert.NotEmpty(t, tickets[1].ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTransportService_Finalize_AlreadyFinalized(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusCompleted}
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)

	_, err := svc.Finalize(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
}

func TestTransportService_Finalize_NoSeats(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{
		ID:     "r1",
		Status: domain.TransportStatusSaved,
		Config: domain.NewTransportConfig(),
	}
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)

	_, err := svc.Finalize(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransportService_MemberCost_IncludesCompanions(t *testing.T) {
	svc, transportRepo, _, userRepo, _ := newTransportService(t)

	cfg := domain.NewTransportConfig()
	cfg.TotalCost = 450
	require.NoError(t, cfg.Assign(0, 0, domain.Passenger{Name: "Ana", Type: domain.PassengerMember, Attendee: "Ana"}))
	require.NoError(t, cfg.Assign(0, 1, domain.Passenger{Name: "Acompañante de Ana #1", Type: domain.PassengerCompanion, Attendee: "Ana"}))
	require.NoError(t, cfg.Assign(0, 2, domain.Passenger{Name: "Luis", Type: domain.PassengerMember, Attendee: "Luis"}))

	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusSaved, Config: cfg}
	user := &domain.User{ID: "u1", Name: "Ana"}

	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	cost, err := svc.MemberCost(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, 300.0, cost)
}

func TestTransportService_Complete_Success(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusConfigured}
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)
	transportRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.TransportStatusCompleted).Return(nil)

	err := svc.Complete(context.Background(), "r1")

	require.NoError(t, err)
}

func TestTransportService_Complete_NotConfigured(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusSaved}
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)

	err := svc.Complete(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransportService_RequestForEvent(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{ID: "r1", EventID: "e1", Status: domain.TransportStatusAssigned}
	transportRepo.EXPECT().GetByEvent(mock.Anything, "e1").Return(req, nil)

	got, err := svc.RequestForEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestTransportService_Cancel_Finalized(t *testing.T) {
	svc, transportRepo, _, _, _ := newTransportService(t)

	req := &domain.TransportRequest{ID: "r1", Status: domain.TransportStatusConfigured}
	transportRepo.EXPECT().GetByID(mock.Anything, "r1").Return(req, nil)

	err := svc.Cancel(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
}
