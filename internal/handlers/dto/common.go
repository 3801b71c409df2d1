package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RespostaErro é o corpo de erro para falhas de domínio reconhecidas
type RespostaErro struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// RespostaErroInterno é o corpo de erro para falhas não reconhecidas
type RespostaErroInterno struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CodeRequisicaoInvalida identifica corpos de requisição rejeitados na borda
const CodeRequisicaoInvalida = "REQUISICAO_INVALIDA"

// NovaRespostaValidacao monta a resposta 400 para um corpo inválido,
// nomeando os campos rejeitados pelo validator quando disponíveis
func NovaRespostaValidacao(err error) RespostaErro {
	return RespostaErro{
		Message: mensagemValidacao(err),
		Code:    CodeRequisicaoInvalida,
	}
}

func mensagemValidacao(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		campos := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			campos[i] = fieldErr.Field()
		}
		return "Campos inválidos: " + strings.Join(campos, ", ")
	}
	return "Corpo da requisição inválido"
}
