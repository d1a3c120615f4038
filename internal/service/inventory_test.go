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

func newInventoryService(t *testing.T) (*InventoryService, *mocks.MockInventoryRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	inventoryRepo := mocks.NewMockInventoryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewInventoryService(inventoryRepo, userRepo, notifier, newTestLogger(t))
	return svc, inventoryRepo, userRepo, notifier
}

func TestInventoryService_CreateInsumo_InvalidCategory(t *testing.T) {
	svc, _, _, _ := newInventoryService(t)

	_, err := svc.CreateInsumo(context.Background(), domain.CreateInsumoInput{
		Nombre:    "Cuerdas",
		Categoria: "electronica",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryService_RequestInsumo_SnapshotsCost(t *testing.T) {
	svc, inventoryRepo, userRepo, _ := newInventoryService(t)

	user := &domain.User{ID: "u1", Name: "Ana"}
	insumo := &domain.Insumo{ID: "i1", Nombre: "Cuerdas", CostoUnitario: 85.5}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	inventoryRepo.EXPECT().GetInsumo(mock.Anything, "i1").Return(insumo, nil)
	inventoryRepo.EXPECT().CreateSolicitud(mock.Anything, mock.Anything).Return(nil)

	solicitud, err := svc.RequestInsumo(context.Background(), domain.CreateSolicitudInput{
		UsuarioID:          "u1",
		InsumoID:           "i1",
		CantidadSolicitada: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 256.5, solicitud.CostoTotal)
	assert.Equal(t, domain.SolicitudPendiente, solicitud.Estado)
	assert.Equal(t, "Cuerdas", solicitud.NombreInsumo)
}

func TestInventoryService_RequestInsumo_InvalidQuantity(t *testing.T) {
	svc, _, _, _ := newInventoryService(t)

	_, err := svc.RequestInsumo(context.Background(), domain.CreateSolicitudInput{
		UsuarioID:          "u1",
		InsumoID:           "i1",
		CantidadSolicitada: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryService_Approve_Success(t *testing.T) {
	svc, inventoryRepo, userRepo, notifier := newInventoryService(t)

	admin := &domain.User{ID: "admin1", Name: "Jefa"}
	member := &domain.User{ID: "u1", Name: "Ana"}
	pending := &domain.SolicitudInsumo{
		ID:                 "s1",
		UsuarioID:          "u1",
		NombreUsuario:      "Ana",
		InsumoID:           "i1",
		NombreInsumo:       "Cuerdas",
		CantidadSolicitada: 2,
		Estado:             domain.SolicitudPendiente,
	}
	approved := &domain.SolicitudInsumo{
		ID:     "s1",
		Estado: domain.SolicitudAprobada,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "admin1").Return(admin, nil)
	inventoryRepo.EXPECT().GetSolicitud(mock.Anything, "s1").Return(pending, nil).Once()

	var gotMovimiento *domain.MovimientoInventario
	inventoryRepo.EXPECT().
		Approve(mock.Anything, "s1", "listo", mock.Anything).
		Run(func(ctx context.Context, solicitudID, comentario string, m *domain.MovimientoInventario) {
			gotMovimiento = m
		}).
		Return(nil)
	inventoryRepo.EXPECT().GetSolicitud(mock.Anything, "s1").Return(approved, nil).Once()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	notifier.EXPECT().NotifySolicitudResolved(mock.Anything, member, approved).Return()

	err := svc.Approve(context.Background(), "s1", "listo", "admin1")

	require.NoError(t, err)
	require.NotNil(t, gotMovimiento)
	assert.Equal(t, domain.MovimientoSalida, gotMovimiento.Tipo)
	assert.Equal(t, 2, gotMovimiento.Cantidad)
	assert.Equal(t, "s1", gotMovimiento.SolicitudID)
	assert.Equal(t, "Jefa", gotMovimiento.NombreUsuario)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInventoryService_Approve_InsufficientStock(t *testing.T) {
	svc, inventoryRepo, userRepo, _ := newInventoryService(t)

	admin := &domain.User{ID: "admin1", Name: "Jefa"}
	pending := &domain.SolicitudInsumo{
		ID:                 "s1",
		InsumoID:           "i1",
		CantidadSolicitada: 50,
		Estado:             domain.SolicitudPendiente,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "admin1").Return(admin, nil)
	inventoryRepo.EXPECT().GetSolicitud(mock.Anything, "s1").Return(pending, nil)
	inventoryRepo.EXPECT().
		Approve(mock.Anything, "s1", "", mock.Anything).
		Return(domain.ErrInsufficientStock)

	err := svc.Approve(context.Background(), "s1", "", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestInventoryService_Adjust_MissingMotivo(t *testing.T) {
	svc, _, _, _ := newInventoryService(t)

	err := svc.Adjust(context.Background(), "i1", domain.MovimientoEntrada, 5, "  ", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryService_Adjust_AjusteSetsAbsoluteQuantity(t *testing.T) {
	svc, inventoryRepo, userRepo, _ := newInventoryService(t)

	admin := &domain.User{ID: "admin1", Name: "Jefa"}
	insumo := &domain.Insumo{ID: "i1", Nombre: "Cuerdas", CantidadDisponible: 10}

	userRepo.EXPECT().GetByID(mock.Anything, "admin1").Return(admin, nil)
	inventoryRepo.EXPECT().GetInsumo(mock.Anything, "i1").Return(insumo, nil)

	var gotMovimiento *domain.MovimientoInventario
	inventoryRepo.EXPECT().
		Adjust(mock.Anything, "i1", mock.Anything).
		Run(func(ctx context.Context, insumoID string, m *domain.MovimientoInventario) {
			gotMovimiento = m
		}).
		Return(nil)

	err := svc.Adjust(context.Background(), "i1", domain.MovimientoAjuste, 25, "conteo anual", "admin1")

	require.NoError(t, err)
	require.NotNil(t, gotMovimiento)
	assert.Equal(t, domain.MovimientoAjuste, gotMovimiento.Tipo)
	assert.Equal(t, 25, gotMovimiento.CantidadNueva)
}

func TestInventoryService_AlertLowStock_Notifies(t *testing.T) {
	svc, inventoryRepo, _, notifier := newInventoryService(t)

	low := []*domain.Insumo{
		{ID: "i1", Nombre: "Cuerdas", CantidadDisponible: 1, CantidadMinima: 5},
	}
	inventoryRepo.EXPECT().ListLowStock(mock.Anything).Return(low, nil)
	notifier.EXPECT().NotifyLowStock(mock.Anything, low).Return()

	items, err := svc.AlertLowStock(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInventoryService_AlertLowStock_NothingLow(t *testing.T) {
	svc, inventoryRepo, _, _ := newInventoryService(t)

	inventoryRepo.EXPECT().ListLowStock(mock.Anything).Return(nil, nil)

	items, err := svc.AlertLowStock(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}
