package entities

import "time"

// Evento representa um evento criado por um administrador
type Evento struct {
	ID              uint
	Titulo          string
	Descricao       string
	Inicio          time.Time
	Duracao         float64 // duração em horas
	LinkFoto        *string
	Rua             string
	NumeroEndereco  int
	Bairro          string
	Complemento     *string
	MunicipioID     int
	UFID            int
	AdministradorID uint
	Administrador   *Usuario
	Participantes   []*Usuario
}

// TemParticipante verifica se o usuário está na lista de participantes
func (e *Evento) TemParticipante(idUsuario uint) bool {
	for _, p := range e.Participantes {
		if p.ID == idUsuario {
			return true
		}
	}
	return false
}
