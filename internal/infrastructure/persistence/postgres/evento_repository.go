package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/repositories"
)

// EventoRepository implementa repositories.EventoRepository
type EventoRepository struct {
	db *gorm.DB
}

// NewEventoRepository cria um novo EventoRepository
func NewEventoRepository(db *gorm.DB) repositories.EventoRepository {
	return &EventoRepository{db: db}
}

func (r *EventoRepository) Create(ctx context.Context, evento *entities.Evento) error {
	model := eventoToModel(evento)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	evento.ID = model.ID
	return nil
}

func (r *EventoRepository) FindByID(ctx context.Context, id uint) (*entities.Evento, error) {
	var model EventoModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Administrador").Where("id_evento = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return eventoToEntity(&model)
}

func (r *EventoRepository) FindAll(ctx context.Context) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Administrador").
		Preload("Participantes").
		Preload("Participantes.Usuario").
		Order("dh_inicio DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	eventos := make([]*entities.Evento, 0, len(models))
	for _, model := range models {
		evento, err := eventoToEntity(model)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, evento)
	}
	return eventos, nil
}

func (r *EventoRepository) FindIDsByAdministrador(ctx context.Context, idUsuario uint) ([]uint, error) {
	var ids []uint

	db := dbFromContext(ctx, r.db)
	err := db.Model(&EventoModel{}).Where("id_administrador = ?", idUsuario).Pluck("id_evento", &ids).Error
	return ids, err
}

func (r *EventoRepository) CountByID(ctx context.Context, id uint) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&EventoModel{}).Where("id_evento = ?", id).Count(&count).Error
	return count, err
}

func (r *EventoRepository) Update(ctx context.Context, evento *entities.Evento) (int64, error) {
	model := eventoToModel(evento)

	db := dbFromContext(ctx, r.db)
	result := db.Model(&EventoModel{}).
		Where("id_evento = ?", model.ID).
		Select("ds_titulo", "ds_evento", "dh_inicio", "nr_duracao", "ds_linkfoto",
			"ds_rua", "nr_endereco", "ds_bairro", "ds_complemento", "id_municipio", "id_uf", "id_administrador").
		Updates(model)
	return result.RowsAffected, result.Error
}

func (r *EventoRepository) Delete(ctx context.Context, id uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_evento = ?", id).Delete(&EventoModel{})
	return result.RowsAffected, result.Error
}

func (r *EventoRepository) DeleteByAdministrador(ctx context.Context, idUsuario uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_administrador = ?", idUsuario).Delete(&EventoModel{})
	return result.RowsAffected, result.Error
}

// Conversores
func eventoToModel(evento *entities.Evento) *EventoModel {
	return &EventoModel{
		ID:              evento.ID,
		Titulo:          evento.Titulo,
		Descricao:       evento.Descricao,
		Inicio:          evento.Inicio,
		Duracao:         evento.Duracao,
		LinkFoto:        evento.LinkFoto,
		Rua:             evento.Rua,
		NumeroEndereco:  evento.NumeroEndereco,
		Bairro:          evento.Bairro,
		Complemento:     evento.Complemento,
		MunicipioID:     evento.MunicipioID,
		UFID:            evento.UFID,
		AdministradorID: evento.AdministradorID,
	}
}

func eventoToEntity(model *EventoModel) (*entities.Evento, error) {
	evento := &entities.Evento{
		ID:              model.ID,
		Titulo:          model.Titulo,
		Descricao:       model.Descricao,
		Inicio:          model.Inicio,
		Duracao:         model.Duracao,
		LinkFoto:        model.LinkFoto,
		Rua:             model.Rua,
		NumeroEndereco:  model.NumeroEndereco,
		Bairro:          model.Bairro,
		Complemento:     model.Complemento,
		MunicipioID:     model.MunicipioID,
		UFID:            model.UFID,
		AdministradorID: model.AdministradorID,
	}

	if model.Administrador != nil {
		administrador, err := usuarioToEntity(model.Administrador)
		if err != nil {
			return nil, err
		}
		evento.Administrador = administrador
	}

	for _, participacao := range model.Participantes {
		if participacao.Usuario == nil {
			continue
		}
		usuario, err := usuarioToEntity(participacao.Usuario)
		if err != nil {
			return nil, err
		}
		evento.Participantes = append(evento.Participantes, usuario)
	}

	return evento, nil
}
