package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateDocument(c *ginext.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateDocumentInput{
		Titulo:          req.Titulo,
		Descripcion:     req.Descripcion,
		RequiredUserIDs: req.RequiredUserIDs,
		CreatedBy:       actor(c).ID,
	}

	doc, err := h.documentService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentoResponse(doc))
}

func (h *Handler) GetDocument(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document id"})
		return
	}

	details, err := h.documentService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DocumentDetailsResponse{
		Documento:  dto.ToDocumentoResponse(&details.Documento),
		Deliveries: details.Deliveries,
	})
}

func (h *Handler) ListDocuments(c *ginext.Context) {
	docs, err := h.documentService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DocumentoResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, dto.ToDocumentoResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ToggleDocumentDelivery(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document id"})
		return
	}

	var req dto.ToggleDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	delivered, err := h.documentService.ToggleDelivery(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"delivered": delivered})
}

// CreateDocumentVersion reissues a document for a fresh signature round.
func (h *Handler) CreateDocumentVersion(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document id"})
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateDocumentInput{
		Titulo:          req.Titulo,
		Descripcion:     req.Descripcion,
		RequiredUserIDs: req.RequiredUserIDs,
		CreatedBy:       actor(c).ID,
	}

	doc, err := h.documentService.NewVersion(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentoResponse(doc))
}

// Evaluations

func (h *Handler) EvaluateMember(c *ginext.Context) {
	var req dto.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	evaluation := &domain.UserEvaluation{
		UserID:      req.UserID,
		EvaluatedBy: actor(c).ID,
		Canto: domain.CantoScores{
			Afinacion:    req.Scores.Canto.Afinacion,
			RangoVocal:   req.Scores.Canto.RangoVocal,
			ControlVocal: req.Scores.Canto.ControlVocal,
			Expresividad: req.Scores.Canto.Expresividad,
		},
		Instrumento: domain.InstrumentoScores{
			Tecnica:      req.Scores.Instrumento.Tecnica,
			Precision:    req.Scores.Instrumento.Precision,
			Creatividad:  req.Scores.Instrumento.Creatividad,
			Versatilidad: req.Scores.Instrumento.Versatilidad,
		},
		Compromiso: domain.CompromisoScores{
			AsistenciaEnsayos:    req.Scores.Compromiso.AsistenciaEnsayos,
			ParticipacionEventos: req.Scores.Compromiso.ParticipacionEventos,
			Colaboracion:         req.Scores.Compromiso.Colaboracion,
		},
		Comentarios: req.Comentarios,
	}

	result, err := h.evaluationService.Evaluate(c.Request.Context(), evaluation)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetEvaluation(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	evaluation, err := h.evaluationService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

func (h *Handler) ListEvaluations(c *ginext.Context) {
	evaluations, err := h.evaluationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluations)
}

func (h *Handler) ListEvaluationLevels(c *ginext.Context) {
	c.JSON(http.StatusOK, h.evaluationService.Levels())
}

// Songs

func (h *Handler) CreateSong(c *ginext.Context) {
	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SongInput{
		Title:           req.Title,
		Author:          req.Author,
		Lyrics:          req.Lyrics,
		Instrumentation: req.Instrumentation,
	}

	song, err := h.songService.Create(c.Request.Context(), input, actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSongResponse(song))
}

func (h *Handler) GetSong(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid song id"})
		return
	}

	song, err := h.songService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSongResponse(song))
}

func (h *Handler) ListSongs(c *ginext.Context) {
	songs, err := h.songService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SongResponse, 0, len(songs))
	for _, s := range songs {
		resp = append(resp, dto.ToSongResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSong(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid song id"})
		return
	}

	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SongInput{
		Title:           req.Title,
		Author:          req.Author,
		Lyrics:          req.Lyrics,
		Instrumentation: req.Instrumentation,
	}

	song, err := h.songService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSongResponse(song))
}
