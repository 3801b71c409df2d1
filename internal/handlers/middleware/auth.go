package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/errors"
	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/handlers/dto"
)

// UsuarioLogadoKey é a chave do usuário autenticado no contexto do Gin
const UsuarioLogadoKey = "usuarioLogado"

// BuscadorUsuario resolve uma credencial (e-mail) para um usuário
type BuscadorUsuario interface {
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
}

// Auth resolve o bearer token (o e-mail do usuário, em texto puro) para
// o registro correspondente antes de cada rota autenticada
type Auth struct {
	usuarios BuscadorUsuario
	logger   ports.Logger
}

// NewAuth cria o middleware de autenticação
func NewAuth(usuarios BuscadorUsuario, logger ports.Logger) *Auth {
	return &Auth{usuarios: usuarios, logger: logger}
}

// Handler autentica a requisição. Credencial ausente responde 401 sem
// corpo; e-mail desconhecido responde 401 com o erro de domínio.
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		credencial := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if credencial == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		usuario, err := m.usuarios.FindByEmail(c.Request.Context(), credencial)
		if err != nil {
			m.logger.Error("falha ao resolver credencial", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.RespostaErroInterno{
				Message: "Ocorreu um erro no servidor",
				Error:   err.Error(),
			})
			return
		}
		if usuario == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.RespostaErro{
				Message: errors.ErrUsuarioInexistente.Message,
				Code:    errors.ErrUsuarioInexistente.Code,
			})
			return
		}

		c.Set(UsuarioLogadoKey, usuario)
		c.Next()
	}
}

// UsuarioLogado retorna o usuário autenticado do contexto da requisição
func UsuarioLogado(c *gin.Context) (*entities.Usuario, bool) {
	valor, ok := c.Get(UsuarioLogadoKey)
	if !ok {
		return nil, false
	}
	usuario, ok := valor.(*entities.Usuario)
	return usuario, ok
}
