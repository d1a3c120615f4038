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

func newAttendanceService(t *testing.T) (*AttendanceService, *mocks.MockAttendanceRepo, *mocks.MockUserRepo) {
	t.Helper()
	attendanceRepo := mocks.NewMockAttendanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAttendanceService(attendanceRepo, userRepo, newTestLogger(t))
	return svc, attendanceRepo, userRepo
}

func TestAttendanceService_TakeRoll_Success(t *testing.T) {
	svc, attendanceRepo, userRepo := newAttendanceService(t)

	users := []*domain.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Luis"},
	}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)
	attendanceRepo.EXPECT().CreateSheet(mock.Anything, mock.Anything).Return(nil)

	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	sheet, err := svc.TakeRoll(context.Background(), date, domain.AttendanceEnsayo, "admin1", []AttendanceMark{
		{UserID: "u1", Status: domain.AttendancePresente},
		{UserID: "u2", Status: domain.AttendanceFalta},
	})

	require.NoError(t, err)
	require.Len(t, sheet.Entries, 2)
	assert.Equal(t, "Ana", sheet.Entries[0].UserName)
	assert.Equal(t, domain.AttendanceFalta, sheet.Entries[1].Status)
	assert.Equal(t, sheet.ID, sheet.Entries[0].SheetID)
}

func TestAttendanceService_TakeRoll_UnknownStatus(t *testing.T) {
	svc, _, userRepo := newAttendanceService(t)

	userRepo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1", Name: "Ana"}}, nil)

	_, err := svc.TakeRoll(context.Background(), time.Now(), domain.AttendanceEnsayo, "admin1", []AttendanceMark{
		{UserID: "u1", Status: "vacaciones"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttendanceService_TakeRoll_UnknownMember(t *testing.T) {
	svc, _, userRepo := newAttendanceService(t)

	userRepo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1", Name: "Ana"}}, nil)

	_, err := svc.TakeRoll(context.Background(), time.Now(), domain.AttendanceEnsayo, "admin1", []AttendanceMark{
		{UserID: "ghost", Status: domain.AttendancePresente},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAttendanceService_TakeRoll_DuplicateMark(t *testing.T) {
	svc, _, userRepo := newAttendanceService(t)

	userRepo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1", Name: "Ana"}}, nil)

	_, err := svc.TakeRoll(context.Background(), time.Now(), domain.AttendanceMisa, "admin1", []AttendanceMark{
		{UserID: "u1", Status: domain.AttendancePresente},
		{UserID: "u1", Status: domain.AttendanceFalta},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttendanceService_TakeRoll_NoMarks(t *testing.T) {
	svc, _, _ := newAttendanceService(t)

	_, err := svc.TakeRoll(context.Background(), time.Now(), domain.AttendanceEnsayo, "admin1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttendanceService_SummaryFor_Computes(t *testing.T) {
	svc, attendanceRepo, userRepo := newAttendanceService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ana"}, nil)
	entries := []domain.AttendanceEntry{
		{UserID: "u1", Status: domain.AttendancePresente},
		{UserID: "u1", Status: domain.AttendancePresente},
		{UserID: "u1", Status: domain.AttendanceEscuela},
		{UserID: "u1", Status: domain.AttendanceFalta},
	}
	attendanceRepo.EXPECT().ListEntriesByUser(mock.Anything, "u1").Return(entries, nil)

	summary, err := svc.SummaryFor(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalSessions)
	assert.Equal(t, 2, summary.Presente)
}

func TestAttendanceService_SummaryFor_UnknownMember(t *testing.T) {
	svc, _, userRepo := newAttendanceService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.SummaryFor(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
