package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateTransportRequest(c *ginext.Context) {
	var req dto.CreateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.transportService.CreateRequest(c.Request.Context(), req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransportRequestResponse(request))
}

func (h *Handler) ListTransportRequests(c *ginext.Context) {
	requests, err := h.transportService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransportRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToTransportRequestResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTransportRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	details, err := h.transportService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransportDetailsResponse{
		Request:    dto.ToTransportRequestResponse(details.Request),
		Unassigned: details.Unassigned,
	})
}

func (h *Handler) AssignTransportRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.AssignTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.transportService.Assign(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "assigned"})
}

func (h *Handler) SetVehicleCount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.VehicleCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.transportService.SetVehicleCount(c.Request.Context(), id, req.Count); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "saved"})
}

func (h *Handler) ResizeVehicle(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.ResizeVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.transportService.ResizeVehicle(c.Request.Context(), id, req.VehicleIndex, req.Capacity); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "saved"})
}

func (h *Handler) SetTransportCosts(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.SetCostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vehicleCosts := make(map[int]float64, len(req.VehicleCosts))
	for _, vc := range req.VehicleCosts {
		vehicleCosts[vc.VehicleIndex] = vc.Cost
	}

	if err := h.transportService.SetCosts(c.Request.Context(), id, req.TotalCost, vehicleCosts); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "saved"})
}

func (h *Handler) AssignSeat(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.transportService.AssignSeat(
		c.Request.Context(), id, req.VehicleIndex, req.SeatIndex, req.PassengerName,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "seated"})
}

func (h *Handler) VacateSeat(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.VacateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.transportService.VacateSeat(c.Request.Context(), id, req.VehicleIndex, req.SeatIndex); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "vacated"})
}

func (h *Handler) FinalizeTransportRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	tickets, err := h.transportService.Finalize(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.ToTicketResponse(&tickets[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetMemberCost answers what the calling member owes for the trip.
func (h *Handler) GetMemberCost(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	cost, err := h.transportService.MemberCost(c.Request.Context(), id, actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"cost": cost})
}

func (h *Handler) CompleteTransportRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	if err := h.transportService.Complete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "completado"})
}

// GetEventTransport resolves the transport request tied to an event.
func (h *Handler) GetEventTransport(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	request, err := h.transportService.RequestForEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransportRequestResponse(request))
}

func (h *Handler) CancelTransportRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	if err := h.transportService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Tickets

func (h *Handler) ListTickets(c *ginext.Context) {
	filter := domain.TicketFilter{
		EventID: c.Query("event_id"),
		Status:  domain.PaymentStatus(c.Query("status")),
	}

	listing, err := h.ticketService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tickets := make([]dto.TicketResponse, 0, len(listing.Tickets))
	for _, t := range listing.Tickets {
		tickets = append(tickets, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, dto.TicketListingResponse{
		Tickets: tickets,
		Revenue: listing.Revenue,
	})
}

func (h *Handler) MarkTicketPaid(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.MarkPaid(c.Request.Context(), id, actor(c).ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "pagado"})
}

func (h *Handler) MarkTicketPending(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.MarkPending(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "pendiente"})
}
