package services

import (
	"context"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/errors"
	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/domain/repositories"
)

// EventoService contém a lógica de negócio para eventos e participantes
type EventoService struct {
	eventoRepo       repositories.EventoRepository
	usuarioRepo      repositories.UsuarioRepository
	participacaoRepo repositories.ParticipacaoRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewEventoService cria um novo EventoService
func NewEventoService(
	eventoRepo repositories.EventoRepository,
	usuarioRepo repositories.UsuarioRepository,
	participacaoRepo repositories.ParticipacaoRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *EventoService {
	return &EventoService{
		eventoRepo:       eventoRepo,
		usuarioRepo:      usuarioRepo,
		participacaoRepo: participacaoRepo,
		uow:              uow,
		logger:           logger,
	}
}

// EventoComSituacao agrega um evento à situação de participação do
// usuário logado
type EventoComSituacao struct {
	Evento   *entities.Evento
	Situacao entities.SituacaoParticipante
}

// SaveEvento salva um novo evento. O administrador precisa existir e o
// identificador recebido é sempre descartado.
func (s *EventoService) SaveEvento(ctx context.Context, evento *entities.Evento) (*entities.Evento, error) {
	if err := s.validateAdministrador(ctx, evento.AdministradorID); err != nil {
		return nil, err
	}

	evento.ID = 0
	if err := s.eventoRepo.Create(ctx, evento); err != nil {
		return nil, err
	}

	s.logger.Info("evento criado", "id_evento", evento.ID, "id_administrador", evento.AdministradorID)
	return evento, nil
}

// UpdateEvento atualiza um evento pelo ID, revalidando o administrador
func (s *EventoService) UpdateEvento(ctx context.Context, evento *entities.Evento) error {
	if err := s.validateAdministrador(ctx, evento.AdministradorID); err != nil {
		return err
	}

	affected, err := s.eventoRepo.Update(ctx, evento)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.ErrEventoInexistente
	}
	return nil
}

// DeleteEventoByID remove um evento e suas participações em uma única
// transação
func (s *EventoService) DeleteEventoByID(ctx context.Context, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.eventoRepo.CountByID(txCtx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return errors.ErrEventoInexistente
		}

		if _, err := s.participacaoRepo.DeleteByEvento(txCtx, id); err != nil {
			return err
		}
		if _, err := s.eventoRepo.Delete(txCtx, id); err != nil {
			return err
		}

		s.logger.Info("evento removido", "id_evento", id)
		return nil
	})
}

// FindEventoByID busca um evento pelo ID, com o administrador resolvido
func (s *EventoService) FindEventoByID(ctx context.Context, id uint) (*entities.Evento, error) {
	evento, err := s.eventoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, errors.ErrEventoInexistente
	}
	return evento, nil
}

// FindAllEventos retorna todos os eventos ordenados por data de início
// decrescente, cada um com administrador, participantes e a situação do
// usuário logado
func (s *EventoService) FindAllEventos(ctx context.Context, usuarioLogado *entities.Usuario) ([]*EventoComSituacao, error) {
	eventos, err := s.eventoRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*EventoComSituacao, len(eventos))
	for i, evento := range eventos {
		situacao := entities.SituacaoNaoConfirmado
		if evento.TemParticipante(usuarioLogado.ID) {
			situacao = entities.SituacaoConfirmado
		}
		result[i] = &EventoComSituacao{Evento: evento, Situacao: situacao}
	}
	return result, nil
}

// AddParticipante adiciona um participante a um evento. Falha com
// PARTICIPANTE_DUPLICADO se o vínculo já existe, sem efeito colateral.
func (s *EventoService) AddParticipante(ctx context.Context, idEvento, idUsuario uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.validateEventoEUsuario(txCtx, idEvento, idUsuario); err != nil {
			return err
		}

		exists, err := s.participacaoRepo.Exists(txCtx, idEvento, idUsuario)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrParticipanteDuplicado
		}

		participacao := &entities.Participacao{EventoID: idEvento, UsuarioID: idUsuario}
		if err := s.participacaoRepo.Create(txCtx, participacao); err != nil {
			return err
		}

		s.logger.Info("participante adicionado", "id_evento", idEvento, "id_usuario", idUsuario)
		return nil
	})
}

// RemoveParticipante remove um participante de um evento
func (s *EventoService) RemoveParticipante(ctx context.Context, idEvento, idUsuario uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.validateEventoEUsuario(txCtx, idEvento, idUsuario); err != nil {
			return err
		}

		affected, err := s.participacaoRepo.Delete(txCtx, idEvento, idUsuario)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.ErrParticipanteInexistente
		}

		s.logger.Info("participante removido", "id_evento", idEvento, "id_usuario", idUsuario)
		return nil
	})
}

// validateEventoEUsuario valida os IDs de um evento e de um usuário.
// A validação do evento sempre precede a do usuário.
func (s *EventoService) validateEventoEUsuario(ctx context.Context, idEvento, idUsuario uint) error {
	countEvento, err := s.eventoRepo.CountByID(ctx, idEvento)
	if err != nil {
		return err
	}
	if countEvento == 0 {
		return errors.ErrEventoInexistente
	}

	countUsuario, err := s.usuarioRepo.CountByID(ctx, idUsuario)
	if err != nil {
		return err
	}
	if countUsuario == 0 {
		return errors.ErrUsuarioInexistente
	}
	return nil
}

// validateAdministrador garante que o administrador do evento existe
func (s *EventoService) validateAdministrador(ctx context.Context, idUsuario uint) error {
	count, err := s.usuarioRepo.CountByID(ctx, idUsuario)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.ErrUsuarioInexistente
	}
	return nil
}
