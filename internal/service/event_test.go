package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestEventService_Confirm_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusOpen}
	user := &domain.User{ID: "u1", Name: "María López"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().UpsertConfirmation(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Confirm(context.Background(), "e1", "u1", domain.ResponseAttending, 2)

	require.NoError(t, err)
	assert.Equal(t, "María López", c.UserName)
	assert.Equal(t, domain.ResponseAttending, c.Response)
	assert.Equal(t, 2, c.Companions)
}

func TestEventService_Confirm_InvalidResponse(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	_, err := svc.Confirm(context.Background(), "e1", "u1", "quizas", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Confirm_NegativeCompanions(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	_, err := svc.Confirm(context.Background(), "e1", "u1", domain.ResponseAttending, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Confirm_NotAttendingDropsCompanions(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusOpen}
	user := &domain.User{ID: "u1", Name: "María López"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().UpsertConfirmation(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Confirm(context.Background(), "e1", "u1", domain.ResponseNotAttending, 3)

	require.NoError(t, err)
	assert.Equal(t, 0, c.Companions)
}

func TestEventService_Confirm_EventClosed(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusFinished}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Confirm(context.Background(), "e1", "u1", domain.ResponseAttending, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestEventService_Withdraw_EventClosed(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusCancelled}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.Withdraw(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestEventService_Create_MissingTitle(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{Title: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails_Summarizes(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusOpen}
	confirmations := []domain.Confirmation{
		{EventID: "e1", UserID: "u1", UserName: "Ana", Response: domain.ResponseAttending, Companions: 2},
		{EventID: "e1", UserID: "u2", UserName: "Luis", Response: domain.ResponseNotAttending},
		{EventID: "e1", UserID: "u3", UserName: "Eva", Response: domain.ResponseMaybe},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().ListConfirmations(mock.Anything, "e1").Return(confirmations, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 1, details.Summary.Attending)
	assert.Equal(t, 1, details.Summary.NotAttending)
	assert.Equal(t, 1, details.Summary.Maybe)
	assert.Equal(t, 2, details.Summary.Companions)
	assert.Equal(t, 3, details.Summary.Total)
}

func TestEventService_SetStatus_Invalid(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEventService(eventRepo, userRepo, log)

	err := svc.SetStatus(context.Background(), "e1", "pausado")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
