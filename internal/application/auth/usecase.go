package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
	"github.com/harasdev/haras-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y validación de token.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	harasRepo repository.HarasRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, harasRepo repository.HarasRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, harasRepo: harasRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en ese haras.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmailAndHaras(ctx, in.Email, in.HarasID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	haras, err := uc.harasRepo.GetByID(ctx, in.HarasID)
	if err != nil {
		return nil, err
	}
	if haras == nil {
		return nil, domain.ErrNotFound // el haras no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCuidador
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		HarasID:      in.HarasID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.HarasID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Validate comprueba el token (firma y expiración) y que el usuario siga
// existiendo y activo. Devuelve ErrUnauthorized para cualquier token que
// no supere la validación.
func (uc *AuthUseCase) Validate(ctx context.Context, token string) (*dto.UserResponse, error) {
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// Logout invalida la sesión del lado del servidor. Con JWT sin estado no hay
// nada que revocar; el gate de sesión borra las credenciales locales sin
// importar el resultado de esta llamada.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	_ = ctx
	_ = token
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		HarasID:   u.HarasID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		PhotoURL:  u.PhotoURL,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
