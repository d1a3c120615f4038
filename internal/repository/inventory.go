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

type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const insumoColumns = `id, nombre, categoria, descripcion, cantidad_disponible, cantidad_minima, costo_unitario, proveedor, activo, fecha_creacion, fecha_actualizacion`

func (r *InventoryRepository) CreateInsumo(ctx context.Context, i *domain.Insumo) error {
	query := `INSERT INTO insumos (` + insumoColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		i.ID, i.Nombre, i.Categoria, i.Descripcion, i.CantidadDisponible,
		i.CantidadMinima, i.CostoUnitario, i.Proveedor, i.Activo,
		i.FechaCreacion, i.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("insert insumo: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetInsumo(ctx context.Context, id string) (*domain.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get insumo: %w", err)
	}

	return scanInsumo(row)
}

func (r *InventoryRepository) ListInsumos(ctx context.Context) ([]*domain.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE activo ORDER BY categoria, nombre`
	return r.queryInsumos(ctx, query)
}

func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]*domain.Insumo, error) {
	query := `SELECT ` + insumoColumns + `
			  FROM insumos
			  WHERE activo AND cantidad_disponible <= cantidad_minima
			  ORDER BY nombre`
	return r.queryInsumos(ctx, query)
}

func (r *InventoryRepository) queryInsumos(ctx context.Context, query string, args ...any) ([]*domain.Insumo, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()

	var res []*domain.Insumo
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}

	return res, rows.Err()
}

func (r *InventoryRepository) UpdateInsumo(ctx context.Context, i *domain.Insumo) error {
	query := `UPDATE insumos
			  SET nombre=$2, categoria=$3, descripcion=$4, cantidad_minima=$5,
			      costo_unitario=$6, proveedor=$7, fecha_actualizacion=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		i.ID, i.Nombre, i.Categoria, i.Descripcion, i.CantidadMinima,
		i.CostoUnitario, i.Proveedor,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}

	return checkInsumoAffected(res)
}

func (r *InventoryRepository) DeactivateInsumo(ctx context.Context, id string) error {
	query := `UPDATE insumos SET activo=false, fecha_actualizacion=now() WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate insumo: %w", err)
	}

	return checkInsumoAffected(res)
}

const solicitudColumns = `id, usuario_id, nombre_usuario, insumo_id, nombre_insumo, cantidad_solicitada, costo_total, estado, observaciones, comentario_admin, fecha_solicitud, fecha_respuesta`

func (r *InventoryRepository) CreateSolicitud(ctx context.Context, s *domain.SolicitudInsumo) error {
	query := `INSERT INTO solicitudes_insumos (` + solicitudColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.UsuarioID, s.NombreUsuario, s.InsumoID, s.NombreInsumo,
		s.CantidadSolicitada, s.CostoTotal, s.Estado, s.Observaciones,
		s.ComentarioAdmin, s.FechaSolicitud, s.FechaRespuesta,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetSolicitud(ctx context.Context, id string) (*domain.SolicitudInsumo, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes_insumos WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get solicitud: %w", err)
	}

	return scanSolicitud(row)
}

func (r *InventoryRepository) ListSolicitudes(ctx context.Context) ([]*domain.SolicitudInsumo, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes_insumos ORDER BY fecha_solicitud DESC`
	return r.querySolicitudes(ctx, query)
}

func (r *InventoryRepository) ListSolicitudesByUser(ctx context.Context, userID string) ([]*domain.SolicitudInsumo, error) {
	query := `SELECT ` + solicitudColumns + `
			  FROM solicitudes_insumos
			  WHERE usuario_id=$1
			  ORDER BY fecha_solicitud DESC`
	return r.querySolicitudes(ctx, query, userID)
}

func (r *InventoryRepository) querySolicitudes(ctx context.Context, query string, args ...any) ([]*domain.SolicitudInsumo, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()

	var res []*domain.SolicitudInsumo
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// Approve locks the insumo row, re-checks the stock, decrements it, records
// the salida movement and resolves the solicitud, all in one transaction.
// The lock closes the window between two concurrent approvals draining the
// same stock.
func (r *InventoryRepository) Approve(ctx context.Context, solicitudID, comentario string, m *domain.MovimientoInventario) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var estado domain.SolicitudStatus
	solQuery := `SELECT estado FROM solicitudes_insumos WHERE id=$1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, solQuery, solicitudID).Scan(&estado); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSolicitudNotFound
		}
		return fmt.Errorf("lock solicitud: %w", err)
	}
	if estado != domain.SolicitudPendiente {
		return domain.ErrSolicitudResolved
	}

	var available int
	lockQuery := `SELECT cantidad_disponible FROM insumos WHERE id=$1 AND activo FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, m.InsumoID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInsumoNotFound
		}
		return fmt.Errorf("lock insumo: %w", err)
	}
	if m.Cantidad > available {
		return domain.ErrInsufficientStock
	}

	m.CantidadAnterior = available
	m.CantidadNueva = available - m.Cantidad

	stockQuery := `UPDATE insumos SET cantidad_disponible=$2, fecha_actualizacion=now() WHERE id=$1`
	if _, err = tx.ExecContext(ctx, stockQuery, m.InsumoID, m.CantidadNueva); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if err = insertMovimiento(ctx, tx, m); err != nil {
		return err
	}

	resolveQuery := `UPDATE solicitudes_insumos
					 SET estado=$2, comentario_admin=$3, fecha_respuesta=now()
					 WHERE id=$1`
	if _, err = tx.ExecContext(ctx, resolveQuery, solicitudID, domain.SolicitudAprobada, comentario); err != nil {
		return fmt.Errorf("resolve solicitud: %w", err)
	}

	return tx.Commit()
}

// Resolve moves a solicitud forward without touching stock. Rechazada is only
// valid from pendiente, entregada only from aprobada.
func (r *InventoryRepository) Resolve(ctx context.Context, solicitudID string, estado domain.SolicitudStatus, comentario string) error {
	from := domain.SolicitudPendiente
	if estado == domain.SolicitudEntregada {
		from = domain.SolicitudAprobada
	}

	query := `UPDATE solicitudes_insumos
			  SET estado=$2, comentario_admin=$3, fecha_respuesta=now()
			  WHERE id=$1 AND estado=$4`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, solicitudID, estado, comentario, from)
	if err != nil {
		return fmt.Errorf("resolve solicitud: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("solicitud rows affected: %w", err)
	}
	if affected == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT estado FROM solicitudes_insumos WHERE id=$1`, solicitudID)
		if err != nil {
			return domain.ErrSolicitudNotFound
		}
		var current domain.SolicitudStatus
		if err := row.Scan(&current); err != nil {
			return domain.ErrSolicitudNotFound
		}
		return domain.ErrSolicitudResolved
	}

	return nil
}

// Adjust sets the new quantity and records the movement atomically. The
// movement carries the target quantity in CantidadNueva.
func (r *InventoryRepository) Adjust(ctx context.Context, insumoID string, m *domain.MovimientoInventario) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var available int
	lockQuery := `SELECT cantidad_disponible FROM insumos WHERE id=$1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, insumoID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInsumoNotFound
		}
		return fmt.Errorf("lock insumo: %w", err)
	}

	m.CantidadAnterior = available
	switch m.Tipo {
	case domain.MovimientoEntrada:
		m.CantidadNueva = available + m.Cantidad
	case domain.MovimientoSalida:
		if m.Cantidad > available {
			return domain.ErrInsufficientStock
		}
		m.CantidadNueva = available - m.Cantidad
	case domain.MovimientoAjuste:
		if m.CantidadNueva < 0 {
			return fmt.Errorf("%w: adjusted quantity must not be negative", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown movement type %q", domain.ErrValidation, m.Tipo)
	}

	query := `UPDATE insumos SET cantidad_disponible=$2, fecha_actualizacion=now() WHERE id=$1`
	if _, err = tx.ExecContext(ctx, query, insumoID, m.CantidadNueva); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if err = insertMovimiento(ctx, tx, m); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *InventoryRepository) ListMovimientos(ctx context.Context, insumoID string, limit int) ([]*domain.MovimientoInventario, error) {
	query := `SELECT id, insumo_id, nombre_insumo, tipo, cantidad, cantidad_anterior, cantidad_nueva, motivo, usuario_id, nombre_usuario, fecha, solicitud_id
			  FROM movimientos_inventario
			  WHERE ($1 = '' OR insumo_id::text = $1)
			  ORDER BY fecha DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, insumoID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var res []*domain.MovimientoInventario
	for rows.Next() {
		var (
			m           domain.MovimientoInventario
			solicitudID sql.NullString
		)
		if err = rows.Scan(
			&m.ID, &m.InsumoID, &m.NombreInsumo, &m.Tipo, &m.Cantidad,
			&m.CantidadAnterior, &m.CantidadNueva, &m.Motivo,
			&m.UsuarioID, &m.NombreUsuario, &m.Fecha, &solicitudID,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.SolicitudID = solicitudID.String
		res = append(res, &m)
	}

	return res, rows.Err()
}

func insertMovimiento(ctx context.Context, tx *sql.Tx, m *domain.MovimientoInventario) error {
	query := `INSERT INTO movimientos_inventario (id, insumo_id, nombre_insumo, tipo, cantidad, cantidad_anterior, cantidad_nueva, motivo, usuario_id, nombre_usuario, fecha, solicitud_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := tx.ExecContext(
		ctx, query,
		m.ID, m.InsumoID, m.NombreInsumo, m.Tipo, m.Cantidad,
		m.CantidadAnterior, m.CantidadNueva, m.Motivo,
		m.UsuarioID, m.NombreUsuario, m.Fecha, nullString(m.SolicitudID),
	); err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func checkInsumoAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insumo rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrInsumoNotFound
	}
	return nil
}

func scanInsumo(row rowScanner) (*domain.Insumo, error) {
	var i domain.Insumo
	if err := row.Scan(
		&i.ID, &i.Nombre, &i.Categoria, &i.Descripcion, &i.CantidadDisponible,
		&i.CantidadMinima, &i.CostoUnitario, &i.Proveedor, &i.Activo,
		&i.FechaCreacion, &i.FechaActualizacion,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInsumoNotFound
		}
		return nil, fmt.Errorf("scan insumo: %w", err)
	}
	return &i, nil
}

func scanSolicitud(row rowScanner) (*domain.SolicitudInsumo, error) {
	var (
		s          domain.SolicitudInsumo
		comentario sql.NullString
	)
	if err := row.Scan(
		&s.ID, &s.UsuarioID, &s.NombreUsuario, &s.InsumoID, &s.NombreInsumo,
		&s.CantidadSolicitada, &s.CostoTotal, &s.Estado, &s.Observaciones,
		&comentario, &s.FechaSolicitud, &s.FechaRespuesta,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSolicitudNotFound
		}
		return nil, fmt.Errorf("scan solicitud: %w", err)
	}
	s.ComentarioAdmin = comentario.String
	return &s, nil
}
