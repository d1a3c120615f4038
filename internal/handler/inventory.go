package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateInsumo(c *ginext.Context) {
	var req dto.CreateInsumoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateInsumoInput{
		Nombre:             req.Nombre,
		Categoria:          domain.InsumoCategory(req.Categoria),
		Descripcion:        req.Descripcion,
		CantidadDisponible: req.CantidadDisponible,
		CantidadMinima:     req.CantidadMinima,
		CostoUnitario:      req.CostoUnitario,
		Proveedor:          req.Proveedor,
	}

	insumo, err := h.inventoryService.CreateInsumo(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInsumoResponse(insumo))
}

func (h *Handler) ListInsumos(c *ginext.Context) {
	insumos, err := h.inventoryService.ListInsumos(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InsumoResponse, 0, len(insumos))
	for _, i := range insumos {
		resp = append(resp, dto.ToInsumoResponse(i))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateInsumo(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid insumo id"})
		return
	}

	var req dto.UpdateInsumoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	insumo := &domain.Insumo{
		ID:             id,
		Nombre:         req.Nombre,
		Categoria:      domain.InsumoCategory(req.Categoria),
		Descripcion:    req.Descripcion,
		CantidadMinima: req.CantidadMinima,
		CostoUnitario:  req.CostoUnitario,
		Proveedor:      req.Proveedor,
	}
	if err := h.inventoryService.UpdateInsumo(c.Request.Context(), insumo); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeactivateInsumo(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid insumo id"})
		return
	}

	if err := h.inventoryService.DeactivateInsumo(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// CreateSolicitud opens a request for the calling member.
func (h *Handler) CreateSolicitud(c *ginext.Context) {
	var req dto.CreateSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateSolicitudInput{
		UsuarioID:          actor(c).ID,
		InsumoID:           req.InsumoID,
		CantidadSolicitada: req.CantidadSolicitada,
		Observaciones:      req.Observaciones,
	}

	solicitud, err := h.inventoryService.RequestInsumo(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, solicitud)
}

func (h *Handler) ListSolicitudes(c *ginext.Context) {
	solicitudes, err := h.inventoryService.ListSolicitudes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, solicitudes)
}

func (h *Handler) ListMySolicitudes(c *ginext.Context) {
	solicitudes, err := h.inventoryService.ListSolicitudesByUser(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, solicitudes)
}

func (h *Handler) ApproveSolicitud(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid solicitud id"})
		return
	}

	var req dto.ResolveSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.inventoryService.Approve(c.Request.Context(), id, req.Comentario, actor(c).ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "aprobada"})
}

func (h *Handler) RejectSolicitud(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid solicitud id"})
		return
	}

	var req dto.ResolveSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.inventoryService.Reject(c.Request.Context(), id, req.Comentario); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rechazada"})
}

func (h *Handler) DeliverSolicitud(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid solicitud id"})
		return
	}

	if err := h.inventoryService.MarkDelivered(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "entregada"})
}

func (h *Handler) AdjustStock(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid insumo id"})
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.inventoryService.Adjust(
		c.Request.Context(), id, domain.MovimientoType(req.Tipo), req.Cantidad, req.Motivo, actor(c).ID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "adjusted"})
}

func (h *Handler) ListMovimientos(c *ginext.Context) {
	movimientos, err := h.inventoryService.ListMovimientos(c.Request.Context(), c.Query("insumo_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, movimientos)
}
