package repositories

import (
	"context"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
)

// ParticipacaoRepository define a interface para persistência dos vínculos
// evento-usuário. Delete* retornam a quantidade de linhas removidas.
type ParticipacaoRepository interface {
	Create(ctx context.Context, participacao *entities.Participacao) error
	Exists(ctx context.Context, idEvento, idUsuario uint) (bool, error)
	Delete(ctx context.Context, idEvento, idUsuario uint) (int64, error)
	DeleteByEvento(ctx context.Context, idEvento uint) (int64, error)
	DeleteByEventos(ctx context.Context, idsEvento []uint) (int64, error)
	DeleteByUsuario(ctx context.Context, idUsuario uint) (int64, error)
}
