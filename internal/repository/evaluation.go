package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EvaluationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEvaluationRepo(db *dbpg.DB) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const evaluationColumns = `id, user_id, user_name, evaluated_by, evaluated_at,
	afinacion, rango_vocal, control_vocal, expresividad,
	tecnica, precision_instrumental, creatividad, versatilidad,
	asistencia_ensayos, participacion_eventos, colaboracion,
	puntuacion_total, nivel, impuesto_porcentaje, comentarios`

// Upsert keeps one evaluation per member: a re-evaluation replaces the
// previous scores in place.
func (r *EvaluationRepository) Upsert(ctx context.Context, e *domain.UserEvaluation) error {
	query := `INSERT INTO user_evaluations (` + evaluationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			  ON CONFLICT (user_id) DO UPDATE SET
			      evaluated_by=EXCLUDED.evaluated_by,
			      evaluated_at=EXCLUDED.evaluated_at,
			      afinacion=EXCLUDED.afinacion,
			      rango_vocal=EXCLUDED.rango_vocal,
			      control_vocal=EXCLUDED.control_vocal,
			      expresividad=EXCLUDED.expresividad,
			      tecnica=EXCLUDED.tecnica,
			      precision_instrumental=EXCLUDED.precision_instrumental,
			      creatividad=EXCLUDED.creatividad,
			      versatilidad=EXCLUDED.versatilidad,
			      asistencia_ensayos=EXCLUDED.asistencia_ensayos,
			      participacion_eventos=EXCLUDED.participacion_eventos,
			      colaboracion=EXCLUDED.colaboracion,
			      puntuacion_total=EXCLUDED.puntuacion_total,
			      nivel=EXCLUDED.nivel,
			      impuesto_porcentaje=EXCLUDED.impuesto_porcentaje,
			      comentarios=EXCLUDED.comentarios`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.UserID, e.UserName, e.EvaluatedBy, e.EvaluatedAt,
		e.Canto.Afinacion, e.Canto.RangoVocal, e.Canto.ControlVocal, e.Canto.Expresividad,
		e.Instrumento.Tecnica, e.Instrumento.Precision, e.Instrumento.Creatividad, e.Instrumento.Versatilidad,
		e.Compromiso.AsistenciaEnsayos, e.Compromiso.ParticipacionEventos, e.Compromiso.Colaboracion,
		e.PuntuacionTotal, e.Nivel, e.ImpuestoPorcentaje, e.Comentarios,
	)
	if err != nil {
		return fmt.Errorf("upsert evaluation: %w", err)
	}

	return nil
}

func (r *EvaluationRepository) GetByUser(ctx context.Context, userID string) (*domain.UserEvaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM user_evaluations WHERE user_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}

	return scanEvaluation(row)
}

func (r *EvaluationRepository) List(ctx context.Context) ([]*domain.UserEvaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM user_evaluations ORDER BY user_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserEvaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvaluation(row rowScanner) (*domain.UserEvaluation, error) {
	var e domain.UserEvaluation
	if err := row.Scan(
		&e.ID, &e.UserID, &e.UserName, &e.EvaluatedBy, &e.EvaluatedAt,
		&e.Canto.Afinacion, &e.Canto.RangoVocal, &e.Canto.ControlVocal, &e.Canto.Expresividad,
		&e.Instrumento.Tecnica, &e.Instrumento.Precision, &e.Instrumento.Creatividad, &e.Instrumento.Versatilidad,
		&e.Compromiso.AsistenciaEnsayos, &e.Compromiso.ParticipacionEventos, &e.Compromiso.Colaboracion,
		&e.PuntuacionTotal, &e.Nivel, &e.ImpuestoPorcentaje, &e.Comentarios,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("scan evaluation: %w", err)
	}
	return &e, nil
}
