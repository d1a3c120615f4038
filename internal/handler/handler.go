package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/textter73/control-estudiantina/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetProfiles(ctx context.Context, id string, profiles []string) error
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	SetStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context, eventID, userID string, response domain.ConfirmationResponse, companions int) (*domain.Confirmation, error)
	Withdraw(ctx context.Context, eventID, userID string) error
}

type AttendanceSvc interface {
	TakeRoll(ctx context.Context, date time.Time, sheetType domain.AttendanceType, takenBy string, marks []service.AttendanceMark) (*domain.AttendanceSheet, error)
	ListSheets(ctx context.Context) ([]*domain.AttendanceSheet, error)
	SummaryFor(ctx context.Context, userID string) (*domain.AttendanceSummary, error)
}

type TransportSvc interface {
	CreateRequest(ctx context.Context, eventID string) (*domain.TransportRequest, error)
	Assign(ctx context.Context, requestID, userID string) error
	List(ctx context.Context) ([]*domain.TransportRequest, error)
	GetDetails(ctx context.Context, requestID string) (*service.TransportDetails, error)
	SetVehicleCount(ctx context.Context, requestID string, count int) error
	ResizeVehicle(ctx context.Context, requestID string, vehicleIndex, capacity int) error
	SetCosts(ctx context.Context, requestID string, totalCost float64, vehicleCosts map[int]float64) error
	AssignSeat(ctx context.Context, requestID string, vehicleIndex, seatIndex int, passengerName string) error
	VacateSeat(ctx context.Context, requestID string, vehicleIndex, seatIndex int) error
	Finalize(ctx context.Context, requestID string) ([]domain.Ticket, error)
	MemberCost(ctx context.Context, requestID, userID string) (float64, error)
	Complete(ctx context.Context, requestID string) error
	Cancel(ctx context.Context, requestID string) error
	RequestForEvent(ctx context.Context, eventID string) (*domain.TransportRequest, error)
}

type TicketSvc interface {
	List(ctx context.Context, filter domain.TicketFilter) (*service.TicketListing, error)
	MarkPaid(ctx context.Context, id, collectedBy string) error
	MarkPending(ctx context.Context, id string) error
}

type FinanceSvc interface {
	OpenAccount(ctx context.Context, userID, createdBy string) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByUser(ctx context.Context, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, search string) ([]*domain.Account, error)
	Apply(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

type PaymentSvc interface {
	CreateConcept(ctx context.Context, input domain.CreatePaymentRequestInput) ([]*domain.PaymentRequest, error)
	ListRequests(ctx context.Context) ([]*domain.PaymentRequest, error)
	ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.PaymentNotification, error)
	RecordPartial(ctx context.Context, userID, concept string, amount float64, note, createdBy string) (*domain.PartialPayment, error)
	ConceptProgress(ctx context.Context, concept string) (*domain.ConceptProgress, error)
	ListPartialsByUser(ctx context.Context, userID string) ([]*domain.PartialPayment, error)
}

type InventorySvc interface {
	CreateInsumo(ctx context.Context, input domain.CreateInsumoInput) (*domain.Insumo, error)
	GetInsumo(ctx context.Context, id string) (*domain.Insumo, error)
	ListInsumos(ctx context.Context) ([]*domain.Insumo, error)
	UpdateInsumo(ctx context.Context, i *domain.Insumo) error
	DeactivateInsumo(ctx context.Context, id string) error
	RequestInsumo(ctx context.Context, input domain.CreateSolicitudInput) (*domain.SolicitudInsumo, error)
	ListSolicitudes(ctx context.Context) ([]*domain.SolicitudInsumo, error)
	ListSolicitudesByUser(ctx context.Context, userID string) ([]*domain.SolicitudInsumo, error)
	Approve(ctx context.Context, solicitudID, comentario, adminID string) error
	Reject(ctx context.Context, solicitudID, comentario string) error
	MarkDelivered(ctx context.Context, solicitudID string) error
	Adjust(ctx context.Context, insumoID string, tipo domain.MovimientoType, cantidad int, motivo, adminID string) error
	ListMovimientos(ctx context.Context, insumoID string) ([]*domain.MovimientoInventario, error)
}

type DocumentSvc interface {
	Create(ctx context.Context, input domain.CreateDocumentInput) (*domain.Documento, error)
	GetDetails(ctx context.Context, id string) (*domain.DocumentDetails, error)
	List(ctx context.Context) ([]*domain.Documento, error)
	ToggleDelivery(ctx context.Context, documentID, userID string) (bool, error)
	NewVersion(ctx context.Context, previousID string, input domain.CreateDocumentInput) (*domain.Documento, error)
}

type EvaluationSvc interface {
	Evaluate(ctx context.Context, e *domain.UserEvaluation) (*domain.UserEvaluation, error)
	GetByUser(ctx context.Context, userID string) (*domain.UserEvaluation, error)
	List(ctx context.Context) ([]*domain.UserEvaluation, error)
	Levels() []domain.LevelConfiguration
}

type SongSvc interface {
	Create(ctx context.Context, input domain.SongInput, createdBy string) (*domain.Song, error)
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.Song, error)
	Update(ctx context.Context, id string, input domain.SongInput) (*domain.Song, error)
}

type Handler struct {
	userService       UserSvc
	eventService      EventSvc
	attendanceService AttendanceSvc
	transportService  TransportSvc
	ticketService     TicketSvc
	financeService    FinanceSvc
	paymentService    PaymentSvc
	inventoryService  InventorySvc
	documentService   DocumentSvc
	evaluationService EvaluationSvc
	songService       SongSvc
}

func NewHandler(
	userService UserSvc,
	eventService EventSvc,
	attendanceService AttendanceSvc,
	transportService TransportSvc,
	ticketService TicketSvc,
	financeService FinanceSvc,
	paymentService PaymentSvc,
	inventoryService InventorySvc,
	documentService DocumentSvc,
	evaluationService EvaluationSvc,
	songService SongSvc,
) *Handler {
	return &Handler{
		userService:       userService,
		eventService:      eventService,
		attendanceService: attendanceService,
		transportService:  transportService,
		ticketService:     ticketService,
		financeService:    financeService,
		paymentService:    paymentService,
		inventoryService:  inventoryService,
		documentService:   documentService,
		evaluationService: evaluationService,
		songService:       songService,
	}
}

// actor returns the authenticated user placed in the context by the authz
// middleware.
func actor(c *ginext.Context) *domain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrConfirmationNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInsumoNotFound),
		errors.Is(err, domain.ErrSolicitudNotFound),
		errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrEvaluationNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrPaymentRequestNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrRequestExists),
		errors.Is(err, domain.ErrEventClosed),
		errors.Is(err, domain.ErrSeatOccupied),
		errors.Is(err, domain.ErrSeatNotOccupied),
		errors.Is(err, domain.ErrPassengerNotInPool),
		errors.Is(err, domain.ErrRequestFinalized),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrSolicitudResolved):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
