package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
	"github.com/rafabene/eventos-backend/internal/domain/repositories"
	"github.com/rafabene/eventos-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := usuarioToModel(usuario)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	usuario.ID = model.ID
	return nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id uint) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id_usuario = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return usuarioToEntity(&model)
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("ds_email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return usuarioToEntity(&model)
}

func (r *UsuarioRepository) FindByCredenciais(ctx context.Context, email, senha string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("ds_email = ? AND ds_senha = ?", email, senha).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return usuarioToEntity(&model)
}

func (r *UsuarioRepository) FindAll(ctx context.Context) ([]*entities.Usuario, error) {
	var models []*UsuarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	return usuariosToEntities(models)
}

func (r *UsuarioRepository) CountByID(ctx context.Context, id uint) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&UsuarioModel{}).Where("id_usuario = ?", id).Count(&count).Error
	return count, err
}

func (r *UsuarioRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&UsuarioModel{}).Where("ds_email = ?", email).Count(&count).Error
	return count, err
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) (int64, error) {
	model := usuarioToModel(usuario)

	db := dbFromContext(ctx, r.db)
	// Select("*") força a escrita de todas as colunas, inclusive zeradas
	result := db.Model(&UsuarioModel{}).
		Where("id_usuario = ?", model.ID).
		Select("nm_usuario", "ds_email", "ds_senha", "nr_telefone", "dt_nascimento", "ds_linkfoto", "tp_sexo").
		Updates(model)
	return result.RowsAffected, result.Error
}

func (r *UsuarioRepository) Delete(ctx context.Context, id uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id_usuario = ?", id).Delete(&UsuarioModel{})
	return result.RowsAffected, result.Error
}

// Conversores
func usuarioToModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:         usuario.ID,
		Nome:       usuario.Nome,
		Email:      usuario.Email.String(),
		Senha:      usuario.Senha,
		Telefone:   usuario.Telefone,
		Nascimento: usuario.Nascimento,
		LinkFoto:   usuario.LinkFoto,
		Sexo:       usuario.Sexo,
	}
}

func usuarioToEntity(model *UsuarioModel) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Usuario{
		ID:         model.ID,
		Nome:       model.Nome,
		Email:      email,
		Senha:      model.Senha,
		Telefone:   model.Telefone,
		Nascimento: model.Nascimento,
		LinkFoto:   model.LinkFoto,
		Sexo:       model.Sexo,
	}, nil
}

func usuariosToEntities(models []*UsuarioModel) ([]*entities.Usuario, error) {
	usuarios := make([]*entities.Usuario, 0, len(models))

	for _, model := range models {
		usuario, err := usuarioToEntity(model)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}

	return usuarios, nil
}
