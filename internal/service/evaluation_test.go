package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports/mocks"
)

func TestEvaluationService_Evaluate_DerivesLevel(t *testing.T) {
	evaluationRepo := mocks.NewMockEvaluationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEvaluationService(evaluationRepo, userRepo, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ana"}, nil)
	evaluationRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	e := &domain.UserEvaluation{
		UserID:      "u1",
		EvaluatedBy: "admin1",
		Canto:       domain.CantoScores{Afinacion: 4, RangoVocal: 4, ControlVocal: 4, Expresividad: 4},
		Instrumento: domain.InstrumentoScores{Tecnica: 4, Precision: 4, Creatividad: 3, Versatilidad: 3},
		Compromiso:  domain.CompromisoScores{AsistenciaEnsayos: 4, ParticipacionEventos: 3, Colaboracion: 3},
	}

	result, err := svc.Evaluate(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, "Ana", result.UserName)
	assert.Equal(t, 40, result.PuntuacionTotal)
	assert.Equal(t, 1, result.Nivel)
	assert.Equal(t, 40.0, result.ImpuestoPorcentaje)
}

func TestEvaluationService_Evaluate_ScoreOutOfRange(t *testing.T) {
	evaluationRepo := mocks.NewMockEvaluationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEvaluationService(evaluationRepo, userRepo, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ana"}, nil)

	e := &domain.UserEvaluation{
		UserID:      "u1",
		Canto:       domain.CantoScores{Afinacion: 5, RangoVocal: 4, ControlVocal: 4, Expresividad: 4},
		Instrumento: domain.InstrumentoScores{Tecnica: 4, Precision: 4, Creatividad: 3, Versatilidad: 3},
		Compromiso:  domain.CompromisoScores{AsistenciaEnsayos: 4, ParticipacionEventos: 3, Colaboracion: 3},
	}

	_, err := svc.Evaluate(context.Background(), e)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEvaluationService_Evaluate_UnknownMember(t *testing.T) {
	evaluationRepo := mocks.NewMockEvaluationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEvaluationService(evaluationRepo, userRepo, log)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Evaluate(context.Background(), &domain.UserEvaluation{UserID: "ghost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEvaluationService_Levels_ReturnsFullTable(t *testing.T) {
	evaluationRepo := mocks.NewMockEvaluationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	log := newTestLogger(t)

	svc := NewEvaluationService(evaluationRepo, userRepo, log)

	levels := svc.Levels()

	require.Len(t, levels, 6)
	assert.Equal(t, 1, levels[0].Nivel)
	assert.Equal(t, 70.0, levels[5].ImpuestoPorcentaje)
}
