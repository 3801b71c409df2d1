package dto

import (
	"fmt"
	"time"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/valueobjects"
)

const formatoData = "2006-01-02"

// UsuarioRequest representa a requisição para criar ou atualizar um usuário
type UsuarioRequest struct {
	IDUsuario    uint    `json:"idUsuario"`
	NmUsuario    string  `json:"nmUsuario" binding:"required,max=255"`
	DsEmail      string  `json:"dsEmail" binding:"required,email"`
	DsSenha      string  `json:"dsSenha" binding:"required,max=50"`
	NrTelefone   string  `json:"nrTelefone" binding:"required,max=17"`
	DtNascimento string  `json:"dtNascimento" binding:"required"`
	DsLinkFoto   *string `json:"dsLinkFoto"`
	TpSexo       int     `json:"tpSexo" binding:"oneof=0 1"`
}

// ToEntity converte a requisição para a entidade Usuario
func (r *UsuarioRequest) ToEntity() (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(r.DsEmail)
	if err != nil {
		return nil, err
	}

	nascimento, err := parseData(r.DtNascimento)
	if err != nil {
		return nil, err
	}

	return &entities.Usuario{
		ID:         r.IDUsuario,
		Nome:       r.NmUsuario,
		Email:      email,
		Senha:      r.DsSenha,
		Telefone:   r.NrTelefone,
		Nascimento: nascimento,
		LinkFoto:   r.DsLinkFoto,
		Sexo:       r.TpSexo,
	}, nil
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	DsEmail string `json:"dsEmail" binding:"required"`
	DsSenha string `json:"dsSenha" binding:"required"`
}

// UsuarioResponse representa a resposta de um usuário. A senha nunca é
// serializada.
type UsuarioResponse struct {
	IDUsuario    uint    `json:"idUsuario"`
	NmUsuario    string  `json:"nmUsuario"`
	DsEmail      string  `json:"dsEmail"`
	NrTelefone   string  `json:"nrTelefone"`
	DtNascimento string  `json:"dtNascimento"`
	DsLinkFoto   *string `json:"dsLinkFoto"`
	TpSexo       int     `json:"tpSexo"`
}

// ToUsuarioResponse converte uma entidade Usuario para UsuarioResponse
func ToUsuarioResponse(usuario *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		IDUsuario:    usuario.ID,
		NmUsuario:    usuario.Nome,
		DsEmail:      usuario.Email.String(),
		NrTelefone:   usuario.Telefone,
		DtNascimento: usuario.Nascimento.Format(formatoData),
		DsLinkFoto:   usuario.LinkFoto,
		TpSexo:       usuario.Sexo,
	}
}

// ToUsuarioResponses converte uma lista de entidades Usuario
func ToUsuarioResponses(usuarios []*entities.Usuario) []UsuarioResponse {
	responses := make([]UsuarioResponse, len(usuarios))
	for i, usuario := range usuarios {
		responses[i] = ToUsuarioResponse(usuario)
	}
	return responses
}

// parseData aceita YYYY-MM-DD ou RFC3339 e normaliza para somente a data
func parseData(valor string) (time.Time, error) {
	if data, err := time.Parse(formatoData, valor); err == nil {
		return data, nil
	}
	if data, err := time.Parse(time.RFC3339, valor); err == nil {
		return time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", valor)
}
