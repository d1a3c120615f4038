package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/textter73/control-estudiantina/internal/service"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:             req.Title,
		Description:       req.Description,
		Date:              date,
		RequiresTransport: req.RequiresTransport,
		CreatedBy:         actor(c).ID,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEventStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.SetStatus(c.Request.Context(), id, domain.EventStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// ConfirmEvent records the caller's own RSVP.
func (h *Handler) ConfirmEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confirmation, err := h.eventService.Confirm(
		c.Request.Context(), eventID, actor(c).ID,
		domain.ConfirmationResponse(req.Response), req.Companions,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfirmationResponse(confirmation))
}

func (h *Handler) WithdrawConfirmation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Withdraw(c.Request.Context(), eventID, actor(c).ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "withdrawn"})
}

// SetMemberConfirmation lets an event manager record or correct another
// member's RSVP.
func (h *Handler) SetMemberConfirmation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	userID := c.Param("userID")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confirmation, err := h.eventService.Confirm(
		c.Request.Context(), eventID, userID,
		domain.ConfirmationResponse(req.Response), req.Companions,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfirmationResponse(confirmation))
}

// RemoveMemberConfirmation lets an event manager drop another member's RSVP.
func (h *Handler) RemoveMemberConfirmation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	userID := c.Param("userID")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.eventService.Withdraw(c.Request.Context(), eventID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "withdrawn"})
}

// Attendance

func (h *Handler) TakeRoll(c *ginext.Context) {
	var req dto.TakeRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	marks := make([]service.AttendanceMark, 0, len(req.Marks))
	for _, m := range req.Marks {
		marks = append(marks, service.AttendanceMark{
			UserID: m.UserID,
			Status: domain.AttendanceStatus(m.Status),
		})
	}

	sheet, err := h.attendanceService.TakeRoll(
		c.Request.Context(), date, domain.AttendanceType(req.Type), actor(c).ID, marks,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceSheetResponse(sheet))
}

func (h *Handler) ListAttendanceSheets(c *ginext.Context) {
	sheets, err := h.attendanceService.ListSheets(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceSheetResponse, 0, len(sheets))
	for _, s := range sheets {
		resp = append(resp, dto.ToAttendanceSheetResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAttendanceSummary(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	summary, err := h.attendanceService.SummaryFor(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
