package domain

import (
	"fmt"
	"time"
)

// Scores for each criterion go from 1 (básico) to 4 (excelente).
const (
	ScoreMin = 1
	ScoreMax = 4
)

type CantoScores struct {
	Afinacion    int `json:"afinacion"`
	RangoVocal   int `json:"rango_vocal"`
	ControlVocal int `json:"control_vocal"`
	Expresividad int `json:"expresividad"`
}

type InstrumentoScores struct {
	Tecnica      int `json:"tecnica"`
	Precision    int `json:"precision"`
	Creatividad  int `json:"creatividad"`
	Versatilidad int `json:"versatilidad"`
}

type CompromisoScores struct {
	AsistenciaEnsayos    int `json:"asistencia_ensayos"`
	ParticipacionEventos int `json:"participacion_eventos"`
	Colaboracion         int `json:"colaboracion"`
}

type UserEvaluation struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	UserName    string            `json:"user_name"`
	EvaluatedBy string            `json:"evaluated_by"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
	Canto       CantoScores       `json:"canto"`
	Instrumento InstrumentoScores `json:"instrumento"`
	Compromiso  CompromisoScores  `json:"compromiso"`
	// Derived from the scores; submitted values are ignored.
	PuntuacionTotal    int     `json:"puntuacion_total"`
	Nivel              int     `json:"nivel"`
	ImpuestoPorcentaje float64 `json:"impuesto_porcentaje"`
	Comentarios        string  `json:"comentarios"`
}

type LevelConfiguration struct {
	Nivel              int
	Nombre             string
	PuntuacionMin      int
	PuntuacionMax      int
	ImpuestoPorcentaje float64
}

// LevelConfigurations is the fixed level table: higher skill, lower level
// number, lower tax.
var LevelConfigurations = []LevelConfiguration{
	{Nivel: 1, Nombre: "Nivel 1 (Máximo)", PuntuacionMin: 37, PuntuacionMax: 44, ImpuestoPorcentaje: 40},
	{Nivel: 2, Nombre: "Nivel 2", PuntuacionMin: 31, PuntuacionMax: 36, ImpuestoPorcentaje: 50},
	{Nivel: 3, Nombre: "Nivel 3", PuntuacionMin: 25, PuntuacionMax: 30, ImpuestoPorcentaje: 55},
	{Nivel: 4, Nombre: "Nivel 4", PuntuacionMin: 19, PuntuacionMax: 24, ImpuestoPorcentaje: 60},
	{Nivel: 5, Nombre: "Nivel 5", PuntuacionMin: 13, PuntuacionMax: 18, ImpuestoPorcentaje: 65},
	{Nivel: 6, Nombre: "Nivel 6 (Mínimo)", PuntuacionMin: 6, PuntuacionMax: 12, ImpuestoPorcentaje: 70},
}

func (e *UserEvaluation) scores() []int {
	return []int{
		e.Canto.Afinacion, e.Canto.RangoVocal, e.Canto.ControlVocal, e.Canto.Expresividad,
		e.Instrumento.Tecnica, e.Instrumento.Precision, e.Instrumento.Creatividad, e.Instrumento.Versatilidad,
		e.Compromiso.AsistenciaEnsayos, e.Compromiso.ParticipacionEventos, e.Compromiso.Colaboracion,
	}
}

// Score validates every criterion and fills in the derived total, level and
// tax percentage.
func (e *UserEvaluation) Score() error {
	total := 0
	for _, s := range e.scores() {
		if s < ScoreMin || s > ScoreMax {
			return fmt.Errorf("%w: criterion scores must be between %d and %d", ErrValidation, ScoreMin, ScoreMax)
		}
		total += s
	}
	e.PuntuacionTotal = total
	for _, lvl := range LevelConfigurations {
		if total >= lvl.PuntuacionMin && total <= lvl.PuntuacionMax {
			e.Nivel = lvl.Nivel
			e.ImpuestoPorcentaje = lvl.ImpuestoPorcentaje
			return nil
		}
	}
	// Unreachable with 11 criteria in 1..4, but keep the table authoritative.
	last := LevelConfigurations[len(LevelConfigurations)-1]
	e.Nivel = last.Nivel
	e.ImpuestoPorcentaje = last.ImpuestoPorcentaje
	return nil
}
