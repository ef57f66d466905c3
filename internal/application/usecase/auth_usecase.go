package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/repository"
	"github.com/resellhub/reseller-api/pkg/jwt"
)

// AuthUseCase autenticación parcial: Register valida y hashea pero no
// persiste al usuario, y Login emite token sin verificar credenciales.
// Ambos endpoints existen para que el frontend tenga el flujo completo
// mientras llega la persistencia de usuarios.
type AuthUseCase struct {
	users      repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, secret, issuer string, expMinutes int) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		jwtSecret:  secret,
		jwtIssuer:  issuer,
		jwtExpMins: expMinutes,
	}
}

// Register verifica duplicados y hashea la contraseña con bcrypt.
// TODO: insertar el usuario cuando exista la migración de la tabla users.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	exists, err := uc.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicate
	}
	if _, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12); err != nil {
		return err
	}
	return nil
}

// Login emite un JWT para el username recibido. No compara la contraseña
// contra nada: la tabla de usuarios todavía no guarda registros.
func (uc *AuthUseCase) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtSecret, in.Username, uc.jwtIssuer, uc.jwtExpMins)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}
