package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const movimientosLimit = 100

type InventoryService struct {
	inventoryRepo ports.InventoryRepo
	userRepo      ports.UserRepo
	notifier      ports.Notifier
	logger        logger.Logger
}

func NewInventoryService(
	inventoryRepo ports.InventoryRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *InventoryService) CreateInsumo(ctx context.Context, input domain.CreateInsumoInput) (*domain.Insumo, error) {
	if strings.TrimSpace(input.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre is required", domain.ErrValidation)
	}
	if !domain.ValidInsumoCategory(input.Categoria) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Categoria)
	}
	if input.CantidadDisponible < 0 || input.CantidadMinima < 0 {
		return nil, fmt.Errorf("%w: quantities must not be negative", domain.ErrValidation)
	}
	if input.CostoUnitario < 0 {
		return nil, fmt.Errorf("%w: unit cost must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	insumo := &domain.Insumo{
		ID:                 uuid.New().String(),
		Nombre:             strings.TrimSpace(input.Nombre),
		Categoria:          input.Categoria,
		Descripcion:        input.Descripcion,
		CantidadDisponible: input.CantidadDisponible,
		CantidadMinima:     input.CantidadMinima,
		CostoUnitario:      input.CostoUnitario,
		Proveedor:          input.Proveedor,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := s.inventoryRepo.CreateInsumo(ctx, insumo); err != nil {
		return nil, fmt.Errorf("create insumo: %w", err)
	}

	s.logger.Info("insumo created",
		logger.String("insumo_id", insumo.ID),
		logger.String("nombre", insumo.Nombre),
	)

	return insumo, nil
}

func (s *InventoryService) GetInsumo(ctx context.Context, id string) (*domain.Insumo, error) {
	return s.inventoryRepo.GetInsumo(ctx, id)
}

func (s *InventoryService) ListInsumos(ctx context.Context) ([]*domain.Insumo, error) {
	return s.inventoryRepo.ListInsumos(ctx)
}

func (s *InventoryService) UpdateInsumo(ctx context.Context, i *domain.Insumo) error {
	if !domain.ValidInsumoCategory(i.Categoria) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, i.Categoria)
	}
	return s.inventoryRepo.UpdateInsumo(ctx, i)
}

func (s *InventoryService) DeactivateInsumo(ctx context.Context, id string) error {
	if err := s.inventoryRepo.DeactivateInsumo(ctx, id); err != nil {
		return fmt.Errorf("deactivate insumo: %w", err)
	}

	s.logger.Info("insumo deactivated", logger.String("insumo_id", id))

	return nil
}

// RequestInsumo opens a member's solicitud. The estimated cost is snapshotted
// from the current unit cost.
func (s *InventoryService) RequestInsumo(ctx context.Context, input domain.CreateSolicitudInput) (*domain.SolicitudInsumo, error) {
	if input.CantidadSolicitada <= 0 {
		return nil, fmt.Errorf("%w: requested quantity must be positive", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, input.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	insumo, err := s.inventoryRepo.GetInsumo(ctx, input.InsumoID)
	if err != nil {
		return nil, fmt.Errorf("get insumo: %w", err)
	}

	solicitud := &domain.SolicitudInsumo{
		ID:                 uuid.New().String(),
		UsuarioID:          user.ID,
		NombreUsuario:      user.Name,
		InsumoID:           insumo.ID,
		NombreInsumo:       insumo.Nombre,
		CantidadSolicitada: input.CantidadSolicitada,
		CostoTotal:         domain.RoundMoney(float64(input.CantidadSolicitada) * insumo.CostoUnitario),
		Estado:             domain.SolicitudPendiente,
		Observaciones:      input.Observaciones,
		FechaSolicitud:     time.Now().UTC(),
	}
	if err = s.inventoryRepo.CreateSolicitud(ctx, solicitud); err != nil {
		return nil, fmt.Errorf("create solicitud: %w", err)
	}

	s.logger.Info("solicitud created",
		logger.String("solicitud_id", solicitud.ID),
		logger.String("insumo_id", insumo.ID),
		logger.Int("cantidad", input.CantidadSolicitada),
	)

	return solicitud, nil
}

func (s *InventoryService) GetSolicitud(ctx context.Context, id string) (*domain.SolicitudInsumo, error) {
	return s.inventoryRepo.GetSolicitud(ctx, id)
}

func (s *InventoryService) ListSolicitudes(ctx context.Context) ([]*domain.SolicitudInsumo, error) {
	return s.inventoryRepo.ListSolicitudes(ctx)
}

func (s *InventoryService) ListSolicitudesByUser(ctx context.Context, userID string) ([]*domain.SolicitudInsumo, error) {
	return s.inventoryRepo.ListSolicitudesByUser(ctx, userID)
}

// Approve grants a pending solicitud: the stock decrement, the salida
// movement and the status change commit atomically inside the repository.
func (s *InventoryService) Approve(ctx context.Context, solicitudID, comentario, adminID string) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("get admin: %w", err)
	}

	solicitud, err := s.inventoryRepo.GetSolicitud(ctx, solicitudID)
	if err != nil {
		return fmt.Errorf("get solicitud: %w", err)
	}

	movimiento := &domain.MovimientoInventario{
		ID:            uuid.New().String(),
		InsumoID:      solicitud.InsumoID,
		NombreInsumo:  solicitud.NombreInsumo,
		Tipo:          domain.MovimientoSalida,
		Cantidad:      solicitud.CantidadSolicitada,
		Motivo:        fmt.Sprintf("Solicitud aprobada: %s", solicitud.NombreUsuario),
		UsuarioID:     admin.ID,
		NombreUsuario: admin.Name,
		Fecha:         time.Now().UTC(),
		SolicitudID:   solicitud.ID,
	}
	if err = s.inventoryRepo.Approve(ctx, solicitudID, comentario, movimiento); err != nil {
		return fmt.Errorf("approve solicitud: %w", err)
	}

	s.logger.Info("solicitud approved",
		logger.String("solicitud_id", solicitudID),
		logger.String("insumo_id", solicitud.InsumoID),
		logger.Int("cantidad", solicitud.CantidadSolicitada),
	)

	s.notifyResolved(ctx, solicitud.UsuarioID, solicitudID)

	return nil
}

// Reject declines a pending solicitud without touching stock.
func (s *InventoryService) Reject(ctx context.Context, solicitudID, comentario string) error {
	solicitud, err := s.inventoryRepo.GetSolicitud(ctx, solicitudID)
	if err != nil {
		return fmt.Errorf("get solicitud: %w", err)
	}

	if err = s.inventoryRepo.Resolve(ctx, solicitudID, domain.SolicitudRechazada, comentario); err != nil {
		return fmt.Errorf("reject solicitud: %w", err)
	}

	s.logger.Info("solicitud rejected", logger.String("solicitud_id", solicitudID))

	s.notifyResolved(ctx, solicitud.UsuarioID, solicitudID)

	return nil
}

// MarkDelivered closes an approved solicitud once the member picks the items
// up.
func (s *InventoryService) MarkDelivered(ctx context.Context, solicitudID string) error {
	if err := s.inventoryRepo.Resolve(ctx, solicitudID, domain.SolicitudEntregada, ""); err != nil {
		return fmt.Errorf("mark solicitud delivered: %w", err)
	}

	s.logger.Info("solicitud delivered", logger.String("solicitud_id", solicitudID))

	return nil
}

func (s *InventoryService) notifyResolved(ctx context.Context, userID, solicitudID string) {
	solicitud, err := s.inventoryRepo.GetSolicitud(ctx, solicitudID)
	if err != nil {
		s.logger.Error("failed to reload solicitud for notification",
			logger.String("solicitud_id", solicitudID),
			logger.String("error", err.Error()),
		)
		return
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for solicitud notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifySolicitudResolved(context.WithoutCancel(ctx), user, solicitud)
}

// Adjust corrects stock by hand: entrada adds, salida removes, ajuste sets an
// absolute quantity.
func (s *InventoryService) Adjust(ctx context.Context, insumoID string, tipo domain.MovimientoType, cantidad int, motivo, adminID string) error {
	if cantidad < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(motivo) == "" {
		return fmt.Errorf("%w: motivo is required", domain.ErrValidation)
	}

	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("get admin: %w", err)
	}

	insumo, err := s.inventoryRepo.GetInsumo(ctx, insumoID)
	if err != nil {
		return fmt.Errorf("get insumo: %w", err)
	}

	movimiento := &domain.MovimientoInventario{
		ID:            uuid.New().String(),
		InsumoID:      insumo.ID,
		NombreInsumo:  insumo.Nombre,
		Tipo:          tipo,
		Cantidad:      cantidad,
		Motivo:        motivo,
		UsuarioID:     admin.ID,
		NombreUsuario: admin.Name,
		Fecha:         time.Now().UTC(),
	}
	if tipo == domain.MovimientoAjuste {
		movimiento.CantidadNueva = cantidad
	}

	if err = s.inventoryRepo.Adjust(ctx, insumoID, movimiento); err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}

	s.logger.Info("stock adjusted",
		logger.String("insumo_id", insumoID),
		logger.String("tipo", string(tipo)),
		logger.Int("cantidad", cantidad),
	)

	return nil
}

func (s *InventoryService) ListMovimientos(ctx context.Context, insumoID string) ([]*domain.MovimientoInventario, error) {
	return s.inventoryRepo.ListMovimientos(ctx, insumoID, movimientosLimit)
}

// AlertLowStock is the scheduler entry point: it reports every active item at
// or under its minimum and pushes one grouped alert.
func (s *InventoryService) AlertLowStock(ctx context.Context) ([]*domain.Insumo, error) {
	items, err := s.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	if len(items) > 0 {
		s.logger.Info("low stock detected", logger.Int("items", len(items)))

		go s.notifier.NotifyLowStock(context.WithoutCancel(ctx), items)
	}

	return items, nil
}
