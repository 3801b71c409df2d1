package services

import (
	"context"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/errors"
	"github.com/rafabene/eventos-backend/internal/domain/ports"
	"github.com/rafabene/eventos-backend/internal/domain/repositories"
)

// UsuarioService contém a lógica de negócio para usuários
type UsuarioService struct {
	usuarioRepo      repositories.UsuarioRepository
	eventoRepo       repositories.EventoRepository
	participacaoRepo repositories.ParticipacaoRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	eventoRepo repositories.EventoRepository,
	participacaoRepo repositories.ParticipacaoRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo:      usuarioRepo,
		eventoRepo:       eventoRepo,
		participacaoRepo: participacaoRepo,
		uow:              uow,
		logger:           logger,
	}
}

// SaveUsuario salva um novo usuário. A comparação de e-mail é case-sensitive
// e o identificador recebido é sempre descartado.
func (s *UsuarioService) SaveUsuario(ctx context.Context, usuario *entities.Usuario) (*entities.Usuario, error) {
	count, err := s.usuarioRepo.CountByEmail(ctx, usuario.Email.String())
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.ErrEmailDuplicado
	}

	usuario.ID = 0
	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}

	s.logger.Info("usuário criado", "id_usuario", usuario.ID)
	return usuario, nil
}

// UpdateUsuario atualiza um usuário pelo ID
func (s *UsuarioService) UpdateUsuario(ctx context.Context, usuario *entities.Usuario) error {
	affected, err := s.usuarioRepo.Update(ctx, usuario)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.ErrUsuarioInexistente
	}
	return nil
}

// DeleteUsuarioByID remove um usuário e, em cascata, os eventos que ele
// administra e todas as participações envolvidas. A cascata inteira roda
// em uma única transação.
func (s *UsuarioService) DeleteUsuarioByID(ctx context.Context, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.usuarioRepo.CountByID(txCtx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return errors.ErrUsuarioInexistente
		}

		idsEvento, err := s.eventoRepo.FindIDsByAdministrador(txCtx, id)
		if err != nil {
			return err
		}
		if _, err := s.participacaoRepo.DeleteByEventos(txCtx, idsEvento); err != nil {
			return err
		}
		if _, err := s.participacaoRepo.DeleteByUsuario(txCtx, id); err != nil {
			return err
		}
		if _, err := s.eventoRepo.DeleteByAdministrador(txCtx, id); err != nil {
			return err
		}
		if _, err := s.usuarioRepo.Delete(txCtx, id); err != nil {
			return err
		}

		s.logger.Info("usuário removido", "id_usuario", id, "eventos_removidos", len(idsEvento))
		return nil
	})
}

// FindUsuarioByID busca um usuário pelo ID
func (s *UsuarioService) FindUsuarioByID(ctx context.Context, id uint) (*entities.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUsuarioInexistente
	}
	return usuario, nil
}

// FindAllUsuarios retorna todos os usuários
func (s *UsuarioService) FindAllUsuarios(ctx context.Context) ([]*entities.Usuario, error) {
	return s.usuarioRepo.FindAll(ctx)
}

// Login valida o par e-mail/senha. Sucesso não produz payload; falha não
// distingue senha incorreta de e-mail desconhecido.
func (s *UsuarioService) Login(ctx context.Context, email, senha string) error {
	usuario, err := s.usuarioRepo.FindByCredenciais(ctx, email, senha)
	if err != nil {
		return err
	}
	if usuario == nil {
		return errors.ErrUsuarioInexistente
	}
	return nil
}
