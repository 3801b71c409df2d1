package errors

import "errors"

// DomainError representa um erro de domínio tratado, com código estável
// e mensagem legível. Código e mensagem fazem parte do contrato da API.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Erros de domínio reconhecidos pela aplicação
var (
	ErrEmailDuplicado          = &DomainError{Code: "EMAIL_DUPLICADO", Message: "E-mail ja existente na base de dados"}
	ErrUsuarioInexistente      = &DomainError{Code: "USUARIO_INEXISTENTE", Message: "Usuário não existe na base de dados"}
	ErrEventoInexistente       = &DomainError{Code: "EVENTO_INEXISTENTE", Message: "Evento não existe na base de dados"}
	ErrParticipanteDuplicado   = &DomainError{Code: "PARTICIPANTE_DUPLICADO", Message: "Participante já existe no evento"}
	ErrParticipanteInexistente = &DomainError{Code: "PARTICIPANTE_INEXISTENTE", Message: "Participante não existe no evento"}
)

// AsDomain extrai um DomainError da cadeia de erros, se houver
func AsDomain(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}
