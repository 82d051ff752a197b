package identity

import (
	"context"
	"testing"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	t.Run("creates user with requested role", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		repo.On("ExistsByEmail", mock.Anything, "maria@fazenda.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Name:     "Maria",
			Email:    "Maria@Fazenda.com",
			Password: "senha123",
			Farm:     "Fazenda Boa Vista",
			Role:     "Gerente",
		})

		require.NoError(t, err)
		assert.Equal(t, "Gerente", resp.Role)
		assert.Equal(t, "maria@fazenda.com", resp.Email)
		assert.True(t, resp.Active)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		repo.On("ExistsByEmail", mock.Anything, "maria@fazenda.com").Return(true, nil)

		_, err := service.Create(context.Background(), CreateUserRequest{
			Name:     "Maria",
			Email:    "maria@fazenda.com",
			Password: "senha123",
			Farm:     "Fazenda Boa Vista",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("changing email re-checks uniqueness", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		user := newActiveUser(t)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("ExistsByEmail", mock.Anything, "novo@fazenda.com").Return(true, nil)

		email := "novo@fazenda.com"
		_, err := service.Update(context.Background(), user.ID, UpdateUserRequest{Email: &email})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("keeping the same email skips the check", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		user := newActiveUser(t)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		email := user.Email
		name := "Carlos Souza"
		resp, err := service.Update(context.Background(), user.ID, UpdateUserRequest{
			Email: &email,
			Name:  &name,
		})

		require.NoError(t, err)
		assert.Equal(t, "Carlos Souza", resp.Name)
		repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("changing password re-hashes", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		user := newActiveUser(t)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		password := "novasenha"
		_, err := service.Update(context.Background(), user.ID, UpdateUserRequest{Password: &password})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("novasenha"))
		assert.False(t, user.VerifyPassword("senha123"))
	})
}

func TestUserService_ActivateDeactivate(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	user := newActiveUser(t)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	resp, err := service.Deactivate(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, resp.Active)

	resp, err = service.Activate(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, resp.Active)
}

func TestUserService_List(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	user := newActiveUser(t)
	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["role"] == "Funcionário" && f.Search == "carlos"
	})).Return([]*identity.User{user}, int64(1), nil)

	page, err := service.List(context.Background(), ListUsersQuery{
		Role:   "Funcionário",
		Search: "carlos",
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestUserService_Delete(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)
	repo.On("Delete", mock.Anything, mock.Anything).Return(shared.ErrNotFound)

	assert.NoError(t, service.Delete(context.Background(), id))
	assert.ErrorIs(t, service.Delete(context.Background(), uuid.New()), shared.ErrNotFound)
}
