package domain

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEventNotFound          = errors.New("event not found")
	ErrConfirmationNotFound   = errors.New("confirmation not found")
	ErrRequestNotFound        = errors.New("transport request not found")
	ErrTicketNotFound         = errors.New("ticket not found")
	ErrAccountNotFound        = errors.New("financial account not found")
	ErrInsumoNotFound         = errors.New("insumo not found")
	ErrSolicitudNotFound      = errors.New("solicitud not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrEvaluationNotFound     = errors.New("evaluation not found")
	ErrSongNotFound           = errors.New("song not found")
	ErrPaymentRequestNotFound = errors.New("payment request not found")
)

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrAccountExists       = errors.New("user already has a financial account")
	ErrRequestExists       = errors.New("event already has a transport request")
	ErrEventClosed         = errors.New("event is not open")
	ErrSeatOccupied        = errors.New("seat is already occupied")
	ErrSeatNotOccupied     = errors.New("seat is not occupied")
	ErrPassengerNotInPool  = errors.New("passenger is not in the unassigned pool")
	ErrRequestFinalized    = errors.New("transport request is already finalized")
	ErrVersionConflict     = errors.New("transport config was modified by someone else")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrSolicitudResolved   = errors.New("solicitud is already resolved")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
