package repositories

import (
	"context"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
)

// EventoRepository define a interface para persistência de eventos.
// FindByID resolve o administrador; FindAll resolve administrador e
// participantes, ordenado por data de início decrescente.
type EventoRepository interface {
	Create(ctx context.Context, evento *entities.Evento) error
	FindByID(ctx context.Context, id uint) (*entities.Evento, error)
	FindAll(ctx context.Context) ([]*entities.Evento, error)
	FindIDsByAdministrador(ctx context.Context, idUsuario uint) ([]uint, error)
	CountByID(ctx context.Context, id uint) (int64, error)
	Update(ctx context.Context, evento *entities.Evento) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByAdministrador(ctx context.Context, idUsuario uint) (int64, error)
}
