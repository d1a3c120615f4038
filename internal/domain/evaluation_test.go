package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluationWithUniformScore(score int) UserEvaluation {
	return UserEvaluation{
		UserID:      "u1",
		UserName:    "Ana",
		Canto:       CantoScores{score, score, score, score},
		Instrumento: InstrumentoScores{score, score, score, score},
		Compromiso:  CompromisoScores{score, score, score},
	}
}

func TestUserEvaluation_Score_Levels(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantTotal int
		wantNivel int
		wantTax   float64
	}{
		{"all excellent", 4, 44, 1, 40},
		{"all good", 3, 33, 2, 50},
		{"all acceptable", 2, 22, 4, 60},
		{"all basic", 1, 11, 6, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := evaluationWithUniformScore(tt.score)
			require.NoError(t, e.Score())
			assert.Equal(t, tt.wantTotal, e.PuntuacionTotal)
			assert.Equal(t, tt.wantNivel, e.Nivel)
			assert.Equal(t, tt.wantTax, e.ImpuestoPorcentaje)
		})
	}
}

func TestUserEvaluation_Score_RejectsOutOfRange(t *testing.T) {
	e := evaluationWithUniformScore(3)
	e.Canto.Afinacion = 5

	assert.ErrorIs(t, e.Score(), ErrValidation)

	e = evaluationWithUniformScore(3)
	e.Compromiso.Colaboracion = 0

	assert.ErrorIs(t, e.Score(), ErrValidation)
}

func TestUserEvaluation_Score_IgnoresSubmittedDerivedValues(t *testing.T) {
	e := evaluationWithUniformScore(4)
	e.PuntuacionTotal = 1
	e.Nivel = 6
	e.ImpuestoPorcentaje = 99

	require.NoError(t, e.Score())
	assert.Equal(t, 44, e.PuntuacionTotal)
	assert.Equal(t, 1, e.Nivel)
	assert.Equal(t, 40.0, e.ImpuestoPorcentaje)
}

func TestSummarizeAttendance(t *testing.T) {
	entries := []AttendanceEntry{
		{UserID: "u1", Status: AttendancePresente},
		{UserID: "u1", Status: AttendanceEscuela},
		{UserID: "u1", Status: AttendanceFalta},
		{UserID: "u1", Status: AttendancePresente},
		{UserID: "u2", Status: AttendanceFalta},
	}

	s := SummarizeAttendance("u1", entries)

	assert.Equal(t, 4, s.TotalSessions)
	assert.Equal(t, 2, s.Presente)
	assert.Equal(t, 75, s.ParticipationPercent)
	assert.Equal(t, 50, s.AttendancePercent)
}
