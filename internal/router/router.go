package router

import (
	"net/http"

	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateProfiles(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEventStatus(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ConfirmEvent(c *ginext.Context)
	WithdrawConfirmation(c *ginext.Context)
	SetMemberConfirmation(c *ginext.Context)
	RemoveMemberConfirmation(c *ginext.Context)

	TakeRoll(c *ginext.Context)
	ListAttendanceSheets(c *ginext.Context)
	GetAttendanceSummary(c *ginext.Context)

	CreateTransportRequest(c *ginext.Context)
	ListTransportRequests(c *ginext.Context)
	GetTransportRequest(c *ginext.Context)
	AssignTransportRequest(c *ginext.Context)
	SetVehicleCount(c *ginext.Context)
	ResizeVehicle(c *ginext.Context)
	SetTransportCosts(c *ginext.Context)
	AssignSeat(c *ginext.Context)
	VacateSeat(c *ginext.Context)
	FinalizeTransportRequest(c *ginext.Context)
	GetMemberCost(c *ginext.Context)
	CompleteTransportRequest(c *ginext.Context)
	CancelTransportRequest(c *ginext.Context)
	GetEventTransport(c *ginext.Context)

	ListTickets(c *ginext.Context)
	MarkTicketPaid(c *ginext.Context)
	MarkTicketPending(c *ginext.Context)

	OpenAccount(c *ginext.Context)
	GetAccount(c *ginext.Context)
	ListAccounts(c *ginext.Context)
	GetMyAccount(c *ginext.Context)
	ApplyTransaction(c *ginext.Context)
	ListTransactions(c *ginext.Context)

	CreatePaymentConcept(c *ginext.Context)
	ListPaymentRequests(c *ginext.Context)
	ListMyPaymentNotifications(c *ginext.Context)
	RecordPartialPayment(c *ginext.Context)
	GetConceptProgress(c *ginext.Context)
	ListMyPartialPayments(c *ginext.Context)

	CreateInsumo(c *ginext.Context)
	ListInsumos(c *ginext.Context)
	UpdateInsumo(c *ginext.Context)
	DeactivateInsumo(c *ginext.Context)
	AdjustStock(c *ginext.Context)
	CreateSolicitud(c *ginext.Context)
	ListSolicitudes(c *ginext.Context)
	ListMySolicitudes(c *ginext.Context)
	ApproveSolicitud(c *ginext.Context)
	RejectSolicitud(c *ginext.Context)
	DeliverSolicitud(c *ginext.Context)
	ListMovimientos(c *ginext.Context)

	CreateDocument(c *ginext.Context)
	GetDocument(c *ginext.Context)
	ListDocuments(c *ginext.Context)
	ToggleDocumentDelivery(c *ginext.Context)
	CreateDocumentVersion(c *ginext.Context)

	EvaluateMember(c *ginext.Context)
	GetEvaluation(c *ginext.Context)
	ListEvaluations(c *ginext.Context)
	ListEvaluationLevels(c *ginext.Context)

	CreateSong(c *ginext.Context)
	GetSong(c *ginext.Context)
	ListSongs(c *ginext.Context)
	UpdateSong(c *ginext.Context)
}

// InitRouter wires the API. Registration is open; everything else requires
// the caller to identify, and write operations are gated per capability.
func InitRouter(mode string, h Handler, identify ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.POST("/users", h.RegisterUser)

	auth := api.Group("", identify)
	{
		auth.GET("/users", h.ListUsers)
		auth.GET("/users/:id", h.GetUser)
		auth.PUT("/users/:id/profiles", middleware.Require(domain.CapManageUsers), h.UpdateProfiles)
		auth.GET("/users/:id/attendance", h.GetAttendanceSummary)
		auth.GET("/users/:id/evaluation", h.GetEvaluation)

		// Events and RSVPs
		auth.POST("/events", middleware.Require(domain.CapManageEvents), h.CreateEvent)
		auth.GET("/events", h.ListEvents)
		auth.GET("/events/:id", h.GetEvent)
		auth.PUT("/events/:id/status", middleware.Require(domain.CapManageEvents), h.UpdateEventStatus)
		auth.DELETE("/events/:id", middleware.Require(domain.CapManageEvents), h.DeleteEvent)
		auth.POST("/events/:id/confirm", h.ConfirmEvent)
		auth.DELETE("/events/:id/confirm", h.WithdrawConfirmation)
		auth.PUT("/events/:id/confirmations/:userID", middleware.Require(domain.CapManageEvents), h.SetMemberConfirmation)
		auth.DELETE("/events/:id/confirmations/:userID", middleware.Require(domain.CapManageEvents), h.RemoveMemberConfirmation)
		auth.GET("/events/:id/transport", h.GetEventTransport)

		// Attendance
		auth.POST("/attendance", middleware.Require(domain.CapManageEvents), h.TakeRoll)
		auth.GET("/attendance", middleware.Require(domain.CapManageEvents), h.ListAttendanceSheets)

		// Transport
		auth.POST("/transport", middleware.Require(domain.CapManageEvents), h.CreateTransportRequest)
		auth.GET("/transport", h.ListTransportRequests)
		auth.GET("/transport/:id", h.GetTransportRequest)
		auth.GET("/transport/:id/my-cost", h.GetMemberCost)
		auth.POST("/transport/:id/assign", middleware.Require(domain.CapManageEvents), h.AssignTransportRequest)

		transport := auth.Group("/transport/:id", middleware.Require(domain.CapManageTransport))
		{
			transport.PUT("/vehicles", h.SetVehicleCount)
			transport.PUT("/vehicles/resize", h.ResizeVehicle)
			transport.PUT("/costs", h.SetTransportCosts)
			transport.POST("/seats", h.AssignSeat)
			transport.DELETE("/seats", h.VacateSeat)
			transport.POST("/finalize", h.FinalizeTransportRequest)
			transport.POST("/complete", h.CompleteTransportRequest)
			transport.POST("/cancel", h.CancelTransportRequest)
		}

		// Tickets
		tickets := auth.Group("/tickets", middleware.Require(domain.CapManageTickets))
		{
			tickets.GET("", h.ListTickets)
			tickets.POST("/:id/pay", h.MarkTicketPaid)
			tickets.POST("/:id/unpay", h.MarkTicketPending)
		}

		// Finance
		auth.GET("/me/account", h.GetMyAccount)
		accounts := auth.Group("/accounts", middleware.Require(domain.CapManageFinances))
		{
			accounts.POST("", h.OpenAccount)
			accounts.GET("", h.ListAccounts)
			accounts.GET("/:id", h.GetAccount)
			accounts.POST("/:id/transactions", h.ApplyTransaction)
			accounts.GET("/:id/transactions", h.ListTransactions)
		}

		// Payment concepts
		auth.GET("/me/payments", h.ListMyPaymentNotifications)
		auth.GET("/me/partials", h.ListMyPartialPayments)
		payments := auth.Group("/payments", middleware.Require(domain.CapManageFinances))
		{
			payments.POST("", h.CreatePaymentConcept)
			payments.GET("", h.ListPaymentRequests)
			payments.POST("/partials", h.RecordPartialPayment)
			payments.GET("/progress", h.GetConceptProgress)
		}

		// Inventory
		auth.GET("/insumos", h.ListInsumos)
		auth.POST("/solicitudes", h.CreateSolicitud)
		auth.GET("/me/solicitudes", h.ListMySolicitudes)

		inventory := auth.Group("", middleware.Require(domain.CapManageInventory))
		{
			inventory.POST("/insumos", h.CreateInsumo)
			inventory.PUT("/insumos/:id", h.UpdateInsumo)
			inventory.DELETE("/insumos/:id", h.DeactivateInsumo)
			inventory.POST("/insumos/:id/adjust", h.AdjustStock)
			inventory.GET("/solicitudes", h.ListSolicitudes)
			inventory.POST("/solicitudes/:id/approve", h.ApproveSolicitud)
			inventory.POST("/solicitudes/:id/reject", h.RejectSolicitud)
			inventory.POST("/solicitudes/:id/deliver", h.DeliverSolicitud)
			inventory.GET("/movimientos", h.ListMovimientos)
		}

		// Documents
		auth.GET("/documents", h.ListDocuments)
		auth.GET("/documents/:id", h.GetDocument)
		documents := auth.Group("/documents", middleware.Require(domain.CapManageDocuments))
		{
			documents.POST("", h.CreateDocument)
			documents.POST("/:id/deliveries", h.ToggleDocumentDelivery)
			documents.POST("/:id/versions", h.CreateDocumentVersion)
		}

		// Evaluations
		auth.GET("/evaluations/levels", h.ListEvaluationLevels)
		evaluations := auth.Group("/evaluations", middleware.Require(domain.CapEvaluateMembers))
		{
			evaluations.POST("", h.EvaluateMember)
			evaluations.GET("", h.ListEvaluations)
		}

		// Songbook
		auth.GET("/songs", h.ListSongs)
		auth.GET("/songs/:id", h.GetSong)
		songs := auth.Group("/songs", middleware.Require(domain.CapEditSongs))
		{
			songs.POST("", h.CreateSong)
			songs.PUT("/:id", h.UpdateSong)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
