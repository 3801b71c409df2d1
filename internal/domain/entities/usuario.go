package entities

import (
	"time"

	"github.com/rafabene/eventos-backend/internal/domain/valueobjects"
)

// Usuario representa um usuário do sistema
type Usuario struct {
	ID         uint
	Nome       string
	Email      valueobjects.Email
	Senha      string
	Telefone   string
	Nascimento time.Time // somente a data é relevante
	LinkFoto   *string
	Sexo       int // 0 ou 1
}
