package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AttendanceService struct {
	attendanceRepo ports.AttendanceRepo
	userRepo       ports.UserRepo
	logger         logger.Logger
}

func NewAttendanceService(attendanceRepo ports.AttendanceRepo, userRepo ports.UserRepo, logger logger.Logger) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

type AttendanceMark struct {
	UserID string
	Status domain.AttendanceStatus
}

// TakeRoll records one roll call. Every mark must reference a registered
// member and carry a known status; user names are denormalized into the
// entries at write time.
func (s *AttendanceService) TakeRoll(ctx context.Context, date time.Time, sheetType domain.AttendanceType, takenBy string, marks []AttendanceMark) (*domain.AttendanceSheet, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if len(marks) == 0 {
		return nil, fmt.Errorf("%w: at least one mark is required", domain.ErrValidation)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	sheet := &domain.AttendanceSheet{
		ID:        uuid.New().String(),
		Date:      date,
		Type:      sheetType,
		TakenBy:   takenBy,
		CreatedAt: time.Now().UTC(),
	}
	seen := make(map[string]struct{}, len(marks))
	for _, m := range marks {
		if !domain.ValidAttendanceStatus(m.Status) {
			return nil, fmt.Errorf("%w: unknown attendance status %q", domain.ErrValidation, m.Status)
		}
		name, ok := names[m.UserID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, m.UserID)
		}
		if _, dup := seen[m.UserID]; dup {
			return nil, fmt.Errorf("%w: user %s marked twice", domain.ErrValidation, m.UserID)
		}
		seen[m.UserID] = struct{}{}
		sheet.Entries = append(sheet.Entries, domain.AttendanceEntry{
			SheetID:  sheet.ID,
			UserID:   m.UserID,
			UserName: name,
			Status:   m.Status,
		})
	}

	if err = s.attendanceRepo.CreateSheet(ctx, sheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	s.logger.Info("attendance recorded",
		logger.String("sheet_id", sheet.ID),
		logger.String("type", string(sheet.Type)),
		logger.Int("entries", len(sheet.Entries)),
	)

	return sheet, nil
}

func (s *AttendanceService) ListSheets(ctx context.Context) ([]*domain.AttendanceSheet, error) {
	return s.attendanceRepo.ListSheets(ctx)
}

// SummaryFor computes one member's participation figures across every sheet.
func (s *AttendanceService) SummaryFor(ctx context.Context, userID string) (*domain.AttendanceSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, err := s.attendanceRepo.ListEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	summary := domain.SummarizeAttendance(userID, entries)
	return &summary, nil
}
