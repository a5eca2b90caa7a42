package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/metrifypremium/metrify-api/infrastructure/repository/mocks"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestLogin(t *testing.T) {
	cfg := config.Auth{Secret: "segredo-de-teste"}

	t.Run("login com sucesso gera token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetByUsername("maria").Return(&domain.User{
			ID:           7,
			Username:     "maria",
			PasswordHash: hashPassword(t, "senha123"),
			Role:         domain.RoleOperator,
			Active:       true,
		}, nil)

		service := NewService(userRepo, cfg)

		// username com maiúsculas e espaços deve ser normalizado
		token, err := service.Login("  Maria ", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "maria", claims.Username)
		assert.Equal(t, domain.RoleOperator, claims.UserRole)
	})

	t.Run("senha incorreta retorna credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetByUsername("maria").Return(&domain.User{
			ID:           7,
			Username:     "maria",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
		}, nil)

		service := NewService(userRepo, cfg)

		_, err := service.Login("maria", "senha-errada")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetByUsername("fantasma").Return(nil, nil)

		service := NewService(userRepo, cfg)

		_, err := service.Login("fantasma", "qualquer")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})

	t.Run("conta desativada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetByUsername("maria").Return(&domain.User{
			ID:           7,
			Username:     "maria",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       false,
		}, nil)

		service := NewService(userRepo, cfg)

		_, err := service.Login("maria", "senha123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUserDisabled))
	})

	t.Run("campos obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, cfg)

		_, err := service.Login("", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingRequiredData))
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetByUsername("maria").Return(&domain.User{
			ID:           7,
			Username:     "maria",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
		}, nil)

		issuer := NewService(userRepo, config.Auth{Secret: "segredo-a"})
		verifier := NewService(userRepo, config.Auth{Secret: "segredo-b"})

		token, err := issuer.Login("maria", "senha123")
		require.NoError(t, err)

		_, err = verifier.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("token malformado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockUserRepository(ctrl), config.Auth{Secret: "segredo"})

		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
	})
}

func TestEnsureDefaultUser(t *testing.T) {
	t.Run("sem usuário padrão configurado não faz nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, config.Auth{})

		require.NoError(t, service.EnsureDefaultUser())
	})

	t.Run("semeia o administrador com a senha criptografada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		var created *domain.User
		userRepo.EXPECT().CreateIfAbsent(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			created = user
			return nil
		})

		service := NewService(userRepo, config.Auth{
			Secret:          "segredo",
			DefaultUser:     "Admin",
			DefaultPassword: "admin123",
		})

		require.NoError(t, service.EnsureDefaultUser())
		require.NotNil(t, created)
		assert.Equal(t, "admin", created.Username)
		assert.Equal(t, domain.RoleAdmin, created.Role)
		assert.True(t, created.Active)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin123")))
	})
}
