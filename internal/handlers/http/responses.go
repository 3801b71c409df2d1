package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/eventos-backend/internal/domain/errors"
	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/handlers/dto"
)

// respondError traduz um erro em resposta HTTP: erros de domínio viram
// 400 com {message, code}; qualquer outro vira 500 com {message, error}
// e é logado.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if domainErr, ok := errors.AsDomain(err); ok {
		c.JSON(http.StatusBadRequest, dto.RespostaErro{
			Message: domainErr.Message,
			Code:    domainErr.Code,
		})
		return
	}

	logger.Error("erro não tratado",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, dto.RespostaErroInterno{
		Message: "Ocorreu um erro no servidor",
		Error:   err.Error(),
	})
}

// parseIDParam lê um parâmetro de rota numérico; responde 400 quando inválido
func parseIDParam(c *gin.Context, nome string) (uint, bool) {
	valor, err := strconv.ParseUint(c.Param(nome), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RespostaErro{
			Message: "Parâmetro " + nome + " inválido",
			Code:    dto.CodeRequisicaoInvalida,
		})
		return 0, false
	}
	return uint(valor), true
}
