package dto

import (
	"time"

	"github.com/textter73/control-estudiantina/internal/domain"
)

type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Profiles       []string `json:"profiles"`
	TelegramChatID *int64   `json:"telegram_chat_id,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type EventResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Date              string `json:"date"`
	Status            string `json:"status"`
	RequiresTransport bool   `json:"requires_transport"`
	CreatedAt         string `json:"created_at"`
}

type ConfirmationResponse struct {
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Response    string `json:"response"`
	Companions  int    `json:"companions"`
	ConfirmedAt string `json:"confirmed_at"`
}

type EventDetailsResponse struct {
	Event         EventResponse              `json:"event"`
	Confirmations []ConfirmationResponse     `json:"confirmations"`
	Summary       domain.ConfirmationSummary `json:"summary"`
}

type AttendanceSheetResponse struct {
	ID        string                   `json:"id"`
	Date      string                   `json:"date"`
	Type      string                   `json:"type"`
	TakenBy   string                   `json:"taken_by"`
	Entries   []domain.AttendanceEntry `json:"entries"`
	CreatedAt string                   `json:"created_at"`
}

type TransportRequestResponse struct {
	ID          string                  `json:"id"`
	EventID     string                  `json:"event_id"`
	Status      string                  `json:"status"`
	AssignedTo  string                  `json:"assigned_to,omitempty"`
	Config      *domain.TransportConfig `json:"config,omitempty"`
	Version     int                     `json:"version"`
	FinalizedAt string                  `json:"finalized_at,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

type TransportDetailsResponse struct {
	Request    TransportRequestResponse `json:"request"`
	Unassigned []domain.Passenger       `json:"unassigned"`
}

type TicketResponse struct {
	ID            string  `json:"id"`
	RequestID     string  `json:"request_id"`
	EventID       string  `json:"event_id"`
	PassengerName string  `json:"passenger_name"`
	PassengerType string  `json:"passenger_type"`
	VehicleIndex  int     `json:"vehicle_index"`
	SeatNumber    int     `json:"seat_number"`
	Price         float64 `json:"price"`
	PaymentStatus string  `json:"payment_status"`
	PaidAt        string  `json:"paid_at,omitempty"`
	PaidBy        string  `json:"paid_by,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type TicketListingResponse struct {
	Tickets []TicketResponse     `json:"tickets"`
	Revenue domain.TicketRevenue `json:"revenue"`
}

type AccountResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	AccountNumber string  `json:"account_number"`
	CardNumber    string  `json:"card_number"`
	Balance       float64 `json:"balance"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"account_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Concept       string  `json:"concept"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`
	CreatedBy     string  `json:"created_by"`
	AuthorizedBy  string  `json:"authorized_by,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type PaymentRequestResponse struct {
	ID            string  `json:"id"`
	Concept       string  `json:"concept"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date,omitempty"`
	RecipientID   string  `json:"recipient_id"`
	RecipientName string  `json:"recipient_name"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type InsumoResponse struct {
	ID                 string  `json:"id"`
	Nombre             string  `json:"nombre"`
	Categoria          string  `json:"categoria"`
	Descripcion        string  `json:"descripcion"`
	CantidadDisponible int     `json:"cantidad_disponible"`
	CantidadMinima     int     `json:"cantidad_minima"`
	CostoUnitario      float64 `json:"costo_unitario"`
	Proveedor          string  `json:"proveedor"`
	Activo             bool    `json:"activo"`
	StockBajo          bool    `json:"stock_bajo"`
}

type DocumentoResponse struct {
	ID                string   `json:"id"`
	Titulo            string   `json:"titulo"`
	Descripcion       string   `json:"descripcion"`
	RequiredUserIDs   []string `json:"required_user_ids"`
	Estado            string   `json:"estado"`
	Version           int      `json:"version"`
	PreviousVersionID string   `json:"previous_version_id,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

type DocumentDetailsResponse struct {
	Documento  DocumentoResponse         `json:"documento"`
	Deliveries []domain.DocumentDelivery `json:"deliveries"`
}

type SongResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Lyrics          string `json:"lyrics"`
	Instrumentation string `json:"instrumentation"`
	CreatedBy       string `json:"created_by"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Profiles:       u.Profiles,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Date:              e.Date.Format(time.RFC3339),
		Status:            string(e.Status),
		RequiresTransport: e.RequiresTransport,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func ToConfirmationResponse(c *domain.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		EventID:     c.EventID,
		UserID:      c.UserID,
		UserName:    c.UserName,
		Response:    string(c.Response),
		Companions:  c.Companions,
		ConfirmedAt: c.ConfirmedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	confirmations := make([]ConfirmationResponse, 0, len(d.Confirmations))
	for _, c := range d.Confirmations {
		confirmations = append(confirmations, ToConfirmationResponse(&c))
	}

	return EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		Confirmations: confirmations,
		Summary:       d.Summary,
	}
}

func ToAttendanceSheetResponse(s *domain.AttendanceSheet) AttendanceSheetResponse {
	return AttendanceSheetResponse{
		ID:        s.ID,
		Date:      s.Date.Format("2006-01-02"),
		Type:      string(s.Type),
		TakenBy:   s.TakenBy,
		Entries:   s.Entries,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransportRequestResponse(r *domain.TransportRequest) TransportRequestResponse {
	resp := TransportRequestResponse{
		ID:         r.ID,
		EventID:    r.EventID,
		Status:     string(r.Status),
		AssignedTo: r.AssignedTo,
		Config:     r.Config,
		Version:    r.Version,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
	if r.FinalizedAt != nil {
		resp.FinalizedAt = r.FinalizedAt.Format(time.RFC3339)
	}
	return resp
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:            t.ID,
		RequestID:     t.RequestID,
		EventID:       t.EventID,
		PassengerName: t.PassengerName,
		PassengerType: string(t.PassengerType),
		VehicleIndex:  t.VehicleIndex,
		SeatNumber:    t.SeatNumber,
		Price:         t.Price,
		PaymentStatus: string(t.PaymentStatus),
		PaidBy:        t.PaidBy,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
	if t.PaidAt != nil {
		resp.PaidAt = t.PaidAt.Format(time.RFC3339)
	}
	return resp
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		UserName:      a.UserName,
		AccountNumber: a.AccountNumber,
		CardNumber:    a.CardNumber,
		Balance:       a.Balance,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		AccountID:     t.AccountID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Concept:       t.Concept,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		CreatedBy:     t.CreatedBy,
		AuthorizedBy:  t.AuthorizedBy,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentRequestResponse(r *domain.PaymentRequest) PaymentRequestResponse {
	resp := PaymentRequestResponse{
		ID:            r.ID,
		Concept:       r.Concept,
		Description:   r.Description,
		Amount:        r.Amount,
		RecipientID:   r.RecipientID,
		RecipientName: r.RecipientName,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.DueDate != nil {
		resp.DueDate = r.DueDate.Format("2006-01-02")
	}
	return resp
}

func ToInsumoResponse(i *domain.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:                 i.ID,
		Nombre:             i.Nombre,
		Categoria:          string(i.Categoria),
		Descripcion:        i.Descripcion,
		CantidadDisponible: i.CantidadDisponible,
		CantidadMinima:     i.CantidadMinima,
		CostoUnitario:      i.CostoUnitario,
		Proveedor:          i.Proveedor,
		Activo:             i.Activo,
		StockBajo:          i.LowStock(),
	}
}

func ToDocumentoResponse(d *domain.Documento) DocumentoResponse {
	return DocumentoResponse{
		ID:                d.ID,
		Titulo:            d.Titulo,
		Descripcion:       d.Descripcion,
		RequiredUserIDs:   d.RequiredUserIDs,
		Estado:            string(d.Estado),
		Version:           d.Version,
		PreviousVersionID: d.PreviousVersionID,
		CreatedAt:         d.CreatedAt.Format(time.RFC3339),
	}
}

func ToSongResponse(s *domain.Song) SongResponse {
	return SongResponse{
		ID:              s.ID,
		Title:           s.Title,
		Author:          s.Author,
		Lyrics:          s.Lyrics,
		Instrumentation: s.Instrumentation,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
