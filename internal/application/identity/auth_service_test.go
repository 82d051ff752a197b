package identity

import (
	"context"
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/auth"
	"github.com/gadogest/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ===== Mock Repositories =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		TokenExpiration: time.Hour,
		Issuer:          "gadogest",
	})
}

func newActiveUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Carlos Silva", "carlos@fazenda.com", "senha123", "Fazenda Boa Vista")
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	t.Run("first user becomes administrator", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		repo.On("ExistsByEmail", mock.Anything, "carlos@fazenda.com").Return(false, nil)
		repo.On("Count", mock.Anything).Return(int64(0), nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Register(context.Background(), RegisterRequest{
			Name:            "Carlos Silva",
			Email:           "Carlos@Fazenda.com",
			Password:        "senha123",
			ConfirmPassword: "senha123",
			Farm:            "Fazenda Boa Vista",
		})

		require.NoError(t, err)
		assert.Equal(t, "Administrador", resp.User.Role)
		assert.Equal(t, "carlos@fazenda.com", resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("later users default to employee", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("Count", mock.Anything).Return(int64(3), nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Register(context.Background(), RegisterRequest{
			Name:            "Maria",
			Email:           "maria@fazenda.com",
			Password:        "senha123",
			ConfirmPassword: "senha123",
			Farm:            "Fazenda Boa Vista",
		})

		require.NoError(t, err)
		assert.Equal(t, "Funcionário", resp.User.Role)
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		_, err := service.Register(context.Background(), RegisterRequest{
			Name:            "Maria",
			Email:           "maria@fazenda.com",
			Password:        "senha123",
			ConfirmPassword: "outra",
			Farm:            "Fazenda Boa Vista",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PASSWORD_MISMATCH", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		repo.On("ExistsByEmail", mock.Anything, "maria@fazenda.com").Return(true, nil)

		_, err := service.Register(context.Background(), RegisterRequest{
			Name:            "Maria",
			Email:           "maria@fazenda.com",
			Password:        "senha123",
			ConfirmPassword: "senha123",
			Farm:            "Fazenda Boa Vista",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials return token and record access", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		user := newActiveUser(t)
		repo.On("FindByEmail", mock.Anything, "carlos@fazenda.com").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "carlos@fazenda.com",
			Password: "senha123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotNil(t, user.LastAccess)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("unknown email yields generic error", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "naoexiste@fazenda.com",
			Password: "senha123",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("wrong password yields generic error", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		user := newActiveUser(t)
		repo.On("FindByEmail", mock.Anything, "carlos@fazenda.com").Return(user, nil)

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "carlos@fazenda.com",
			Password: "errada",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("inactive account yields generic error", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newJWTService())

		user := newActiveUser(t)
		user.Deactivate()
		repo.On("FindByEmail", mock.Anything, "carlos@fazenda.com").Return(user, nil)

		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "carlos@fazenda.com",
			Password: "senha123",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewAuthService(repo, newJWTService())

	user := newActiveUser(t)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	resp, err := service.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "carlos@fazenda.com", resp.Email)

	_, err = service.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSeedService_Bootstrap(t *testing.T) {
	t.Run("seeds admin when no users exist", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewSeedService(repo, "boot-code", zap.NewNop())

		repo.On("Count", mock.Anything).Return(int64(0), nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "admin@gadogest.com" && u.Role == identity.RoleAdministrator && u.VerifyPassword("admin123")
		})).Return(nil)

		result, err := service.Bootstrap(context.Background(), "boot-code")

		require.NoError(t, err)
		assert.True(t, result.Created)
		repo.AssertExpectations(t)
	})

	t.Run("idempotent when users already exist", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewSeedService(repo, "boot-code", zap.NewNop())

		repo.On("Count", mock.Anything).Return(int64(1), nil)

		result, err := service.Bootstrap(context.Background(), "boot-code")

		require.NoError(t, err)
		assert.False(t, result.Created)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects wrong code", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewSeedService(repo, "boot-code", zap.NewNop())

		_, err := service.Bootstrap(context.Background(), "wrong")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
		repo.AssertNotCalled(t, "Count", mock.Anything)
	})
}
