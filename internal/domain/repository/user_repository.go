package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
// Los métodos Get/Find devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndHaras(ctx context.Context, email, harasID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
