package repositories

import (
	"context"

	"github.com/rafabene/eventos-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários.
// Métodos Find* retornam (nil, nil) quando o registro não existe;
// Update e Delete retornam a quantidade de linhas afetadas.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id uint) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	FindByCredenciais(ctx context.Context, email, senha string) (*entities.Usuario, error)
	FindAll(ctx context.Context) ([]*entities.Usuario, error)
	CountByID(ctx context.Context, id uint) (int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Update(ctx context.Context, usuario *entities.Usuario) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
