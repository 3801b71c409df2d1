package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/handlers/dto"
	"github.com/rafabene/eventos-backend/internal/handlers/middleware"
	"github.com/rafabene/eventos-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP relacionadas a usuários
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
	logger         ports.Logger
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService, logger ports.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
		logger:         logger,
	}
}

// FindAll retorna todos os usuários
func (h *UsuarioHandler) FindAll(c *gin.Context) {
	usuarios, err := h.usuarioService.FindAllUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUsuarioResponses(usuarios))
}

// FindByID busca um usuário pelo ID
func (h *UsuarioHandler) FindByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	usuario, err := h.usuarioService.FindUsuarioByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Save cria um novo usuário
func (h *UsuarioHandler) Save(c *gin.Context) {
	var req dto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	usuario, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	criado, err := h.usuarioService.SaveUsuario(c.Request.Context(), usuario)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUsuarioResponse(criado))
}

// Update atualiza um usuário existente
func (h *UsuarioHandler) Update(c *gin.Context) {
	var req dto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	usuario, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	if err := h.usuarioService.UpdateUsuario(c.Request.Context(), usuario); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete remove um usuário pelo ID, em cascata
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usuarioService.DeleteUsuarioByID(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Perfil retorna os dados do usuário autenticado
func (h *UsuarioHandler) Perfil(c *gin.Context) {
	usuario, ok := middleware.UsuarioLogado(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Login valida o par e-mail/senha. Sucesso responde 200 sem corpo.
func (h *UsuarioHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NovaRespostaValidacao(err))
		return
	}

	if err := h.usuarioService.Login(c.Request.Context(), req.DsEmail, req.DsSenha); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}
