package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain"
	pkgjwt "github.com/resellhub/reseller-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestRegister_UsuarioDuplicado(t *testing.T) {
	uc := usecase.NewAuthUseCase(&fakeUserRepo{exists: true}, testSecret, "test", 60)

	err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_SinDuplicado(t *testing.T) {
	uc := usecase.NewAuthUseCase(&fakeUserRepo{}, testSecret, "test", 60)

	err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestLogin_EmiteTokenVerificable(t *testing.T) {
	uc := usecase.NewAuthUseCase(&fakeUserRepo{}, testSecret, "test", 60)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "lo-que-sea"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
}

func TestLogin_SinSecretFalla(t *testing.T) {
	uc := usecase.NewAuthUseCase(&fakeUserRepo{}, "", "test", 60)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "x"})
	assert.Error(t, err)
}
