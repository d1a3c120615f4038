package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) OpenAccount(c *ginext.Context) {
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.financeService.OpenAccount(c.Request.Context(), req.UserID, actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) GetAccount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	account, err := h.financeService.GetAccount(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) ListAccounts(c *ginext.Context) {
	accounts, err := h.financeService.ListAccounts(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.ToAccountResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// GetMyAccount serves the calling member's own account.
func (h *Handler) GetMyAccount(c *ginext.Context) {
	account, err := h.financeService.GetAccountByUser(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) ApplyTransaction(c *ginext.Context) {
	accountID := c.Param("id")
	if _, err := uuid.Parse(accountID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.TransactionInput{
		AccountID: accountID,
		Type:      domain.TransactionType(req.Type),
		Amount:    req.Amount,
		Concept:   req.Concept,
		CreatedBy: actor(c).ID,
	}

	transaction, err := h.financeService.Apply(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

func (h *Handler) ListTransactions(c *ginext.Context) {
	accountID := c.Param("id")
	if _, err := uuid.Parse(accountID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	transactions, err := h.financeService.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, dto.ToTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Payment concepts

func (h *Handler) CreatePaymentConcept(c *ginext.Context) {
	var req dto.CreatePaymentConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid due_date format, expected YYYY-MM-DD",
			})
			return
		}
		dueDate = &d
	}

	quotas := make([]domain.Quota, 0, len(req.Quotas))
	for _, q := range req.Quotas {
		quotas = append(quotas, domain.Quota{UserID: q.UserID, Amount: q.Amount})
	}

	input := domain.CreatePaymentRequestInput{
		Concept:     req.Concept,
		Description: req.Description,
		DueDate:     dueDate,
		Quotas:      quotas,
		CreatedBy:   actor(c).ID,
	}

	requests, err := h.paymentService.CreateConcept(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToPaymentRequestResponse(r))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListPaymentRequests(c *ginext.Context) {
	requests, err := h.paymentService.ListRequests(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToPaymentRequestResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyPaymentNotifications serves the caller's own payment inbox.
func (h *Handler) ListMyPaymentNotifications(c *ginext.Context) {
	notifications, err := h.paymentService.ListNotificationsByUser(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) RecordPartialPayment(c *ginext.Context) {
	var req dto.PartialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	partial, err := h.paymentService.RecordPartial(
		c.Request.Context(), req.UserID, req.Concept, req.Amount, req.Note, actor(c).ID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partial)
}

func (h *Handler) GetConceptProgress(c *ginext.Context) {
	concept := c.Query("concept")
	if concept == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "concept is required"})
		return
	}

	progress, err := h.paymentService.ConceptProgress(c.Request.Context(), concept)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *Handler) ListMyPartialPayments(c *ginext.Context) {
	partials, err := h.paymentService.ListPartialsByUser(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, partials)
}
