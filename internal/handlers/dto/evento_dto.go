package dto

import (
	"fmt"
	"time"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/services"
)

const formatoDataHora = "2006-01-02T15:04:05-0700"

// AdministradorRequest referencia o usuário administrador pelo ID
type AdministradorRequest struct {
	IDUsuario uint `json:"idUsuario" binding:"required"`
}

// EventoRequest representa a requisição para criar ou atualizar um evento
type EventoRequest struct {
	IDEvento      uint                  `json:"idEvento"`
	DsTitulo      string                `json:"dsTitulo" binding:"required,max=100"`
	DsEvento      string                `json:"dsEvento" binding:"required,max=255"`
	DhInicio      string                `json:"dhInicio" binding:"required"`
	NrDuracao     float64               `json:"nrDuracao" binding:"required,gt=0"`
	DsLinkFoto    *string               `json:"dsLinkFoto"`
	DsRua         string                `json:"dsRua" binding:"required,max=100"`
	NrEndereco    int                   `json:"nrEndereco"`
	DsBairro      string                `json:"dsBairro" binding:"required,max=100"`
	DsComplemento *string               `json:"dsComplemento"`
	IDMunicipio   int                   `json:"idMunicipio"`
	IDUF          int                   `json:"idUF"`
	Administrador *AdministradorRequest `json:"administrador" binding:"required"`
}

// ToEntity converte a requisição para a entidade Evento
func (r *EventoRequest) ToEntity() (*entities.Evento, error) {
	inicio, err := parseDataHora(r.DhInicio)
	if err != nil {
		return nil, err
	}

	return &entities.Evento{
		ID:              r.IDEvento,
		Titulo:          r.DsTitulo,
		Descricao:       r.DsEvento,
		Inicio:          inicio,
		Duracao:         r.NrDuracao,
		LinkFoto:        r.DsLinkFoto,
		Rua:             r.DsRua,
		NumeroEndereco:  r.NrEndereco,
		Bairro:          r.DsBairro,
		Complemento:     r.DsComplemento,
		MunicipioID:     r.IDMunicipio,
		UFID:            r.IDUF,
		AdministradorID: r.Administrador.IDUsuario,
	}, nil
}

// EventoResponse representa a resposta de um evento. Administrador,
// participantes e situação só aparecem nas operações que os resolvem.
type EventoResponse struct {
	IDEvento          uint              `json:"idEvento"`
	DsTitulo          string            `json:"dsTitulo"`
	DsEvento          string            `json:"dsEvento"`
	DhInicio          string            `json:"dhInicio"`
	NrDuracao         float64           `json:"nrDuracao"`
	DsLinkFoto        *string           `json:"dsLinkFoto"`
	DsRua             string            `json:"dsRua"`
	NrEndereco        int               `json:"nrEndereco"`
	DsBairro          string            `json:"dsBairro"`
	DsComplemento     *string           `json:"dsComplemento"`
	IDMunicipio       int               `json:"idMunicipio"`
	IDUF              int               `json:"idUF"`
	Administrador     *UsuarioResponse  `json:"administrador,omitempty"`
	ParticipantesList []UsuarioResponse `json:"participantesList,omitempty"`
	StParticipante    *int              `json:"stParticipante,omitempty"`
}

// ToEventoResponse converte uma entidade Evento para EventoResponse,
// incluindo o administrador quando resolvido
func ToEventoResponse(evento *entities.Evento) EventoResponse {
	response := EventoResponse{
		IDEvento:      evento.ID,
		DsTitulo:      evento.Titulo,
		DsEvento:      evento.Descricao,
		DhInicio:      evento.Inicio.Format(formatoDataHora),
		NrDuracao:     evento.Duracao,
		DsLinkFoto:    evento.LinkFoto,
		DsRua:         evento.Rua,
		NrEndereco:    evento.NumeroEndereco,
		DsBairro:      evento.Bairro,
		DsComplemento: evento.Complemento,
		IDMunicipio:   evento.MunicipioID,
		IDUF:          evento.UFID,
	}

	if evento.Administrador != nil {
		administrador := ToUsuarioResponse(evento.Administrador)
		response.Administrador = &administrador
	}

	return response
}

// ToEventoComSituacaoResponse converte um evento com a situação de
// participação do usuário logado, incluindo a lista de participantes
func ToEventoComSituacaoResponse(eventoComSituacao *services.EventoComSituacao) EventoResponse {
	response := ToEventoResponse(eventoComSituacao.Evento)
	response.ParticipantesList = ToUsuarioResponses(eventoComSituacao.Evento.Participantes)

	situacao := int(eventoComSituacao.Situacao)
	response.StParticipante = &situacao

	return response
}

// ToEventoComSituacaoResponses converte a lista completa de eventos
func ToEventoComSituacaoResponses(eventos []*services.EventoComSituacao) []EventoResponse {
	responses := make([]EventoResponse, len(eventos))
	for i, evento := range eventos {
		responses[i] = ToEventoComSituacaoResponse(evento)
	}
	return responses
}

// parseDataHora aceita RFC3339 ou data simples
func parseDataHora(valor string) (time.Time, error) {
	if dataHora, err := time.Parse(time.RFC3339, valor); err == nil {
		return dataHora, nil
	}
	if dataHora, err := time.Parse(formatoDataHora, valor); err == nil {
		return dataHora, nil
	}
	if data, err := time.Parse(formatoData, valor); err == nil {
		return data, nil
	}
	return time.Time{}, fmt.Errorf("data/hora inválida: %q", valor)
}
