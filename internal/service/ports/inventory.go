package ports

import (
	"context"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type InventoryRepo interface {
	CreateInsumo(ctx context.Context, i *domain.Insumo) error
	GetInsumo(ctx context.Context, id string) (*domain.Insumo, error)
	ListInsumos(ctx context.Context) ([]*domain.Insumo, error)
	ListLowStock(ctx context.Context) ([]*domain.Insumo, error)
	UpdateInsumo(ctx context.Context, i *domain.Insumo) error
	DeactivateInsumo(ctx context.Context, id string) error
	CreateSolicitud(ctx context.Context, s *domain.SolicitudInsumo) error
	GetSolicitud(ctx context.Context, id string) (*domain.SolicitudInsumo, error)
	ListSolicitudes(ctx context.Context) ([]*domain.SolicitudInsumo, error)
	ListSolicitudesByUser(ctx context.Context, userID string) ([]*domain.SolicitudInsumo, error)
	// Approve decrements stock under a row lock, records the salida movement
	// and resolves the solicitud in one transaction.
	Approve(ctx context.Context, solicitudID, comentario string, m *domain.MovimientoInventario) error
	Resolve(ctx context.Context, solicitudID string, estado domain.SolicitudStatus, comentario string) error
	// Adjust sets the new quantity and records the ajuste movement atomically.
	Adjust(ctx context.Context, insumoID string, m *domain.MovimientoInventario) error
	ListMovimientos(ctx context.Context, insumoID string, limit int) ([]*domain.MovimientoInventario, error)
}
