package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	hmocks "github.com/textter73/control-estudiantina/internal/handler/mocks"
	"github.com/textter73/control-estudiantina/internal/service"
	"github.com/wb-go/wbf/ginext"
)

const testAdminID = "9f1c2b3a-4d5e-4f60-8a7b-1c2d3e4f5a6b"

type handlerMocks struct {
	user       *hmocks.MockUserSvc
	event      *hmocks.MockEventSvc
	attendance *hmocks.MockAttendanceSvc
	transport  *hmocks.MockTransportSvc
	ticket     *hmocks.MockTicketSvc
	finance    *hmocks.MockFinanceSvc
	payment    *hmocks.MockPaymentSvc
	inventory  *hmocks.MockInventorySvc
	document   *hmocks.MockDocumentSvc
	evaluation *hmocks.MockEvaluationSvc
	song       *hmocks.MockSongSvc
}

// setupRouter registers the routes exercised by the tests and identifies
// every request as an administrator so actor(c) resolves.
func setupRouter(t *testing.T) (*handlerMocks, http.Handler) {
	t.Helper()

	m := &handlerMocks{
		user:       hmocks.NewMockUserSvc(t),
		event:      hmocks.NewMockEventSvc(t),
		attendance: hmocks.NewMockAttendanceSvc(t),
		transport:  hmocks.NewMockTransportSvc(t),
		ticket:     hmocks.NewMockTicketSvc(t),
		finance:    hmocks.NewMockFinanceSvc(t),
		payment:    hmocks.NewMockPaymentSvc(t),
		inventory:  hmocks.NewMockInventorySvc(t),
		document:   hmocks.NewMockDocumentSvc(t),
		evaluation: hmocks.NewMockEvaluationSvc(t),
		song:       hmocks.NewMockSongSvc(t),
	}

	h := NewHandler(
		m.user, m.event, m.attendance, m.transport, m.ticket,
		m.finance, m.payment, m.inventory, m.document, m.evaluation, m.song,
	)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set("user", &domain.User{
			ID:       testAdminID,
			Name:     "Directora",
			Profiles: []string{domain.ProfileAdmin},
		})
	})

	api := r.Group("/api")
	{
		api.POST("/users", h.RegisterUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/confirm", h.ConfirmEvent)
		api.PUT("/events/:id/confirmations/:userID", h.SetMemberConfirmation)

		api.POST("/transport", h.CreateTransportRequest)
		api.GET("/transport/:id", h.GetTransportRequest)
		api.POST("/transport/:id/seats", h.AssignSeat)
		api.POST("/transport/:id/finalize", h.FinalizeTransportRequest)
		api.POST("/transport/:id/complete", h.CompleteTransportRequest)
		api.GET("/transport/:id/my-cost", h.GetMemberCost)
		api.GET("/events/:id/transport", h.GetEventTransport)

		api.GET("/tickets", h.ListTickets)
		api.POST("/tickets/:id/pay", h.MarkTicketPaid)

		api.POST("/accounts", h.OpenAccount)
		api.POST("/accounts/:id/transactions", h.ApplyTransaction)

		api.POST("/payments/concepts", h.CreatePaymentConcept)

		api.POST("/solicitudes", h.CreateSolicitud)
		api.POST("/solicitudes/:id/approve", h.ApproveSolicitud)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Users ---

func TestHandler_RegisterUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Ana Torres",
		Email:     "ana@example.com",
		Profiles:  []string{domain.ProfileMember},
		CreatedAt: time.Now(),
	}
	m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Profiles: []string{domain.ProfileMember},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ana Torres", resp.Name)
	assert.Equal(t, []string{domain.ProfileMember}, resp.Profiles)
}

func TestHandler_RegisterUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Ana Torres",
		Email: "ana@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUser_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid user id", resp.Error)
}

func TestHandler_ListUsers_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	date := time.Now().Add(72 * time.Hour)
	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             "Callejoneada",
		Date:              date,
		Status:            domain.EventStatusOpen,
		RequiresTransport: true,
		CreatedAt:         time.Now(),
	}

	var gotInput domain.CreateEventInput
	m.event.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateEventInput) {
			gotInput = input
		}).
		Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:             "Callejoneada",
		Date:              date.Format(time.RFC3339),
		RequiresTransport: true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testAdminID, gotInput.CreatedBy)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Callejoneada", resp.Title)
	assert.True(t, resp.RequiresTransport)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Callejoneada",
		Date:  "12/05/2026",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid date format, expected RFC3339", resp.Error)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ConfirmEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	confirmation := &domain.Confirmation{
		EventID:     eventID,
		UserID:      testAdminID,
		UserName:    "Directora",
		Response:    domain.ResponseAttending,
		Companions:  2,
		ConfirmedAt: time.Now(),
	}
	m.event.EXPECT().
		Confirm(mock.Anything, eventID, testAdminID, domain.ResponseAttending, 2).
		Return(confirmation, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/confirm", dto.ConfirmRequest{
		Response:   string(domain.ResponseAttending),
		Companions: 2,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testAdminID, resp.UserID)
	assert.Equal(t, 2, resp.Companions)
}

func TestHandler_ConfirmEvent_EventClosed(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().
		Confirm(mock.Anything, eventID, testAdminID, domain.ResponseAttending, 0).
		Return(nil, domain.ErrEventClosed)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/confirm", dto.ConfirmRequest{
		Response: string(domain.ResponseAttending),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SetMemberConfirmation_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	confirmation := &domain.Confirmation{
		EventID:     eventID,
		UserID:      userID,
		UserName:    "Ana",
		Response:    domain.ResponseNotAttending,
		ConfirmedAt: time.Now(),
	}
	m.event.EXPECT().
		Confirm(mock.Anything, eventID, userID, domain.ResponseNotAttending, 0).
		Return(confirmation, nil)

	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID+"/confirmations/"+userID, dto.ConfirmRequest{
		Response: string(domain.ResponseNotAttending),
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.UserID)
}

// --- Transport ---

func TestHandler_CreateTransportRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	request := &domain.TransportRequest{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Status:    domain.TransportStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.transport.EXPECT().CreateRequest(mock.Anything, eventID).Return(request, nil)

	w := doJSON(t, r, http.MethodPost, "/api/transport", dto.CreateTransportRequest{
		EventID: eventID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TransportRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.EventID)
	assert.Equal(t, string(domain.TransportStatusPending), resp.Status)
}

func TestHandler_CreateTransportRequest_Exists(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.transport.EXPECT().CreateRequest(mock.Anything, eventID).Return(nil, domain.ErrRequestExists)

	w := doJSON(t, r, http.MethodPost, "/api/transport", dto.CreateTransportRequest{
		EventID: eventID,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetTransportRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	details := &service.TransportDetails{
		Request: &domain.TransportRequest{
			ID:        id,
			Status:    domain.TransportStatusAssigned,
			Config:    domain.NewTransportConfig(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Unassigned: []domain.Passenger{
			{Name: "Ana", Type: domain.PassengerMember, Attendee: "Ana"},
		},
	}
	m.transport.EXPECT().GetDetails(mock.Anything, id).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/transport/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransportDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Request.ID)
	require.Len(t, resp.Unassigned, 1)
	assert.Equal(t, "Ana", resp.Unassigned[0].Name)
}

func TestHandler_AssignSeat_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.transport.EXPECT().AssignSeat(mock.Anything, id, 0, 3, "Ana").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/transport/"+id+"/seats", dto.AssignSeatRequest{
		VehicleIndex:  0,
		SeatIndex:     3,
		PassengerName: "Ana",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"seated"}`, w.Body.String())
}

func TestHandler_AssignSeat_SeatOccupied(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.transport.EXPECT().AssignSeat(mock.Anything, id, 0, 3, "Ana").Return(domain.ErrSeatOccupied)

	w := doJSON(t, r, http.MethodPost, "/api/transport/"+id+"/seats", dto.AssignSeatRequest{
		VehicleIndex:  0,
		SeatIndex:     3,
		PassengerName: "Ana",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_FinalizeTransportRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	tickets := []domain.Ticket{
		{
			ID:            uuid.New().String(),
			RequestID:     id,
			PassengerName: "Ana",
			PassengerType: domain.PassengerMember,
			Price:         150,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     time.Now(),
		},
		{
			ID:            uuid.New().String(),
			RequestID:     id,
			PassengerName: "Acompañante de Ana #1",
			PassengerType: domain.PassengerCompanion,
			Price:         150,
			PaymentStatus: domain.PaymentStatusPending,
			CreatedAt:     time.Now(),
		},
	}
	m.transport.EXPECT().Finalize(mock.Anything, id).Return(tickets, nil)

	w := doJSON(t, r, http.MethodPost, "/api/transport/"+id+"/finalize", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Ana", resp[0].PassengerName)
	assert.Equal(t, 150.0, resp[1].Price)
}

func TestHandler_FinalizeTransportRequest_AlreadyFinalized(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.transport.EXPECT().Finalize(mock.Anything, id).Return(nil, domain.ErrRequestFinalized)

	w := doJSON(t, r, http.MethodPost, "/api/transport/"+id+"/finalize", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CompleteTransportRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.transport.EXPECT().Complete(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/transport/"+id+"/complete", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"completado"}`, w.Body.String())
}

func TestHandler_GetEventTransport_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	request := &domain.TransportRequest{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Status:    domain.TransportStatusAssigned,
		CreatedAt: time.Now(),
	}
	m.transport.EXPECT().RequestForEvent(mock.Anything, eventID).Return(request, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/transport", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransportRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, request.ID, resp.ID)
	assert.Equal(t, string(domain.TransportStatusAssigned), resp.Status)
}

func TestHandler_GetEventTransport_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.transport.EXPECT().RequestForEvent(mock.Anything, eventID).Return(nil, domain.ErrRequestNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/transport", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetMemberCost_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.transport.EXPECT().MemberCost(mock.Anything, id, testAdminID).Return(300.0, nil)

	w := doJSON(t, r, http.MethodGet, "/api/transport/"+id+"/my-cost", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cost":300}`, w.Body.String())
}

// --- Tickets ---

func TestHandler_ListTickets_FiltersFromQuery(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	listing := &service.TicketListing{
		Tickets: []*domain.Ticket{
			{ID: "t1", EventID: eventID, Price: 150, PaymentStatus: domain.PaymentStatusPaid, CreatedAt: time.Now()},
		},
		Revenue: domain.TicketRevenue{PaidCount: 1, PaidTotal: 150},
	}
	m.ticket.EXPECT().
		List(mock.Anything, domain.TicketFilter{EventID: eventID, Status: domain.PaymentStatusPaid}).
		Return(listing, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets?event_id="+eventID+"&status=pagado", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, 1, resp.Revenue.PaidCount)
	assert.Equal(t, 150.0, resp.Revenue.PaidTotal)
}

func TestHandler_MarkTicketPaid_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.ticket.EXPECT().MarkPaid(mock.Anything, id, testAdminID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/"+id+"/pay", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"pagado"}`, w.Body.String())
}

func TestHandler_MarkTicketPaid_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tickets/abc/pay", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Finance ---

func TestHandler_OpenAccount_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	account := &domain.Account{
		ID:            uuid.New().String(),
		UserID:        userID,
		UserName:      "Ana Torres",
		AccountNumber: "400012345678",
		CardNumber:    "5555123412341234",
		Status:        "activa",
		CreatedAt:     time.Now(),
	}
	m.finance.EXPECT().OpenAccount(mock.Anything, userID, testAdminID).Return(account, nil)

	w := doJSON(t, r, http.MethodPost, "/api/accounts", dto.OpenAccountRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "400012345678", resp.AccountNumber)
	assert.Equal(t, 0.0, resp.Balance)
}

func TestHandler_ApplyTransaction_InsufficientBalance(t *testing.T) {
	m, r := setupRouter(t)

	accountID := uuid.New().String()
	m.finance.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientBalance)

	w := doJSON(t, r, http.MethodPost, "/api/accounts/"+accountID+"/transactions", dto.TransactionRequest{
		Type:    string(domain.TransactionWithdrawal),
		Amount:  500,
		Concept: "Retiro",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Payments ---

func TestHandler_CreatePaymentConcept_Success(t *testing.T) {
	m, r := setupRouter(t)

	u1 := uuid.New().String()
	requests := []*domain.PaymentRequest{
		{
			ID:            uuid.New().String(),
			Concept:       "Uniformes 2026",
			Amount:        800,
			RecipientID:   u1,
			RecipientName: "Ana",
			Status:        domain.PaymentRequestActive,
			CreatedAt:     time.Now(),
		},
	}

	var gotInput domain.CreatePaymentRequestInput
	m.payment.EXPECT().
		CreateConcept(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreatePaymentRequestInput) {
			gotInput = input
		}).
		Return(requests, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/concepts", dto.CreatePaymentConceptRequest{
		Concept: "Uniformes 2026",
		DueDate: "2026-10-15",
		Quotas:  []dto.QuotaRequest{{UserID: u1, Amount: 800}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testAdminID, gotInput.CreatedBy)
	require.NotNil(t, gotInput.DueDate)
	assert.Equal(t, "2026-10-15", gotInput.DueDate.Format("2006-01-02"))

	var resp []dto.PaymentRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ana", resp[0].RecipientName)
}

func TestHandler_CreatePaymentConcept_BadDueDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/concepts", dto.CreatePaymentConceptRequest{
		Concept: "Uniformes 2026",
		DueDate: "15-10-2026",
		Quotas:  []dto.QuotaRequest{{UserID: uuid.New().String(), Amount: 800}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Inventory ---

func TestHandler_CreateSolicitud_Success(t *testing.T) {
	m, r := setupRouter(t)

	insumoID := uuid.New().String()
	solicitud := &domain.SolicitudInsumo{
		ID:                 uuid.New().String(),
		UsuarioID:          testAdminID,
		InsumoID:           insumoID,
		CantidadSolicitada: 2,
		Estado:             domain.SolicitudPendiente,
	}

	var gotInput domain.CreateSolicitudInput
	m.inventory.EXPECT().
		RequestInsumo(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateSolicitudInput) {
			gotInput = input
		}).
		Return(solicitud, nil)

	w := doJSON(t, r, http.MethodPost, "/api/solicitudes", map[string]any{
		"insumo_id":           insumoID,
		"cantidad_solicitada": 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testAdminID, gotInput.UsuarioID)
	assert.Equal(t, insumoID, gotInput.InsumoID)
}

func TestHandler_ApproveSolicitud_InsufficientStock(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.inventory.EXPECT().
		Approve(mock.Anything, id, mock.Anything, testAdminID).
		Return(domain.ErrInsufficientStock)

	w := doJSON(t, r, http.MethodPost, "/api/solicitudes/"+id+"/approve", map[string]any{
		"comentario": "no hay stock",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}
