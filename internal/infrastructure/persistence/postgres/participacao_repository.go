package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/repositories"
)

// ParticipacaoRepository implementa repositories.ParticipacaoRepository
type ParticipacaoRepository struct {
	db *gorm.DB
}

// NewParticipacaoRepository cria um novo ParticipacaoRepository
func NewParticipacaoRepository(db *gorm.DB) repositories.ParticipacaoRepository {
	return &ParticipacaoRepository{db: db}
}

func (r *ParticipacaoRepository) Create(ctx context.Context, participacao *entities.Participacao) error {
	model := &ParticipacaoModel{
		EventoID:  participacao.EventoID,
		UsuarioID: participacao.UsuarioID,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	participacao.ID = model.ID
	return nil
}

func (r *ParticipacaoRepository) Exists(ctx context.Context, idEvento, idUsuario uint) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ParticipacaoModel{}).
		Where("id_evento = ? AND id_usuario = ?", idEvento, idUsuario).
		Count(&count).Error
	return count > 0, err
}

func (r *ParticipacaoRepository) Delete(ctx context.Context, idEvento, idUsuario uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_evento = ? AND id_usuario = ?", idEvento, idUsuario).Delete(&ParticipacaoModel{})
	return result.RowsAffected, result.Error
}

func (r *ParticipacaoRepository) DeleteByEvento(ctx context.Context, idEvento uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_evento = ?", idEvento).Delete(&ParticipacaoModel{})
	return result.RowsAffected, result.Error
}

func (r *ParticipacaoRepository) DeleteByEventos(ctx context.Context, idsEvento []uint) (int64, error) {
	if len(idsEvento) == 0 {
		return 0, nil
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("id_evento IN ?", idsEvento).Delete(&ParticipacaoModel{})
	return result.RowsAffected, result.Error
}

func (r *ParticipacaoRepository) DeleteByUsuario(ctx context.Context, idUsuario uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_usuario = ?", idUsuario).Delete(&ParticipacaoModel{})
	return result.RowsAffected, result.Error
}
