package entities

// Participacao é o vínculo entre um Evento e um Usuario participante.
// A existência do registro significa "participação confirmada".
type Participacao struct {
	ID        uint
	EventoID  uint
	UsuarioID uint
	Usuario   *Usuario
}

// SituacaoParticipante indica a situação do usuário logado em relação a um evento
type SituacaoParticipante int

const (
	SituacaoNaoConfirmado SituacaoParticipante = 0
	SituacaoConfirmado    SituacaoParticipante = 1
)
