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

type EvaluationService struct {
	evaluationRepo ports.EvaluationRepo
	userRepo       ports.UserRepo
	logger         logger.Logger
}

func NewEvaluationService(evaluationRepo ports.EvaluationRepo, userRepo ports.UserRepo, logger logger.Logger) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Evaluate scores a member across the eleven criteria. The total, level and
// tax percentage are always derived server side; a re-evaluation replaces the
// member's previous record.
func (s *EvaluationService) Evaluate(ctx context.Context, e *domain.UserEvaluation) (*domain.UserEvaluation, error) {
	user, err := s.userRepo.GetByID(ctx, e.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	e.ID = uuid.New().String()
	e.UserName = user.Name
	e.EvaluatedAt = time.Now().UTC()
	if err = e.Score(); err != nil {
		return nil, err
	}

	if err = s.evaluationRepo.Upsert(ctx, e); err != nil {
		return nil, fmt.Errorf("upsert evaluation: %w", err)
	}

	s.logger.Info("member evaluated",
		logger.String("user_id", e.UserID),
		logger.Int("total", e.PuntuacionTotal),
		logger.Int("nivel", e.Nivel),
	)

	return e, nil
}

func (s *EvaluationService) GetByUser(ctx context.Context, userID string) (*domain.UserEvaluation, error) {
	return s.evaluationRepo.GetByUser(ctx, userID)
}

func (s *EvaluationService) List(ctx context.Context) ([]*domain.UserEvaluation, error) {
	return s.evaluationRepo.List(ctx)
}

// Levels exposes the fixed level table for the evaluation screen.
func (s *EvaluationService) Levels() []domain.LevelConfiguration {
	return domain.LevelConfigurations
}
