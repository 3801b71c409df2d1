package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/handlers/dto"
	"github.com/rafabene/eventos-backend/internal/handlers/middleware"
	"github.com/rafabene/eventos-backend/internal/services"
)

// EventoHandler lida com requisições HTTP relacionadas a eventos e
// participantes
type EventoHandler struct {
	eventoService *services.EventoService
	logger        ports.Logger
}

// NewEventoHandler cria um novo EventoHandler
func NewEventoHandler(eventoService *services.EventoService, logger ports.Logger) *EventoHandler {
	return &EventoHandler{
		eventoService: eventoService,
		logger:        logger,
	}
}

// FindAll retorna todos os eventos com a situação de participação do
// usuário autenticado
func (h *EventoHandler) FindAll(c *gin.Context) {
	usuarioLogado, ok := middleware.UsuarioLogado(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	eventos, err := h.eventoService.FindAllEventos(c.Request.Context(), usuarioLogado)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventoComSituacaoResponses(eventos))
}

// FindByID busca um evento pelo ID, com o administrador resolvido
func (h *EventoHandler) FindByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	evento, err := h.eventoService.FindEventoByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventoResponse(evento))
}

// Save cria um novo evento
func (h *EventoHandler) Save(c *gin.Context) {
	var req dto.EventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	evento, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	criado, err := h.eventoService.SaveEvento(c.Request.Context(), evento)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventoResponse(criado))
}

// Update atualiza um evento existente
func (h *EventoHandler) Update(c *gin.Context) {
	var req dto.EventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	evento, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	if err := h.eventoService.UpdateEvento(c.Request.Context(), evento); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete remove um evento pelo ID, junto com suas participações
func (h *EventoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventoService.DeleteEventoByID(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// AddParticipante adiciona um participante a um evento
func (h *EventoHandler) AddParticipante(c *gin.Context) {
	idEvento, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	idUsuario, ok := parseIDParam(c, "idUsuario")
	if !ok {
		return
	}

	if err := h.eventoService.AddParticipante(c.Request.Context(), idEvento, idUsuario); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveParticipante remove um participante de um evento
func (h *EventoHandler) RemoveParticipante(c *gin.Context) {
	idEvento, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	idUsuario, ok := parseIDParam(c, "idUsuario")
	if !ok {
		return
	}

	if err := h.eventoService.RemoveParticipante(c.Request.Context(), idEvento, idUsuario); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}
