package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockUserRepository creates a GormUserRepository with a mocked SQL connection
func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func TestGormUserRepository_FindByEmail_Mock(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "farm", "role", "active"}).
			AddRow(userID, "Maria", "maria@fazenda.com", "$2a$10$hash", "Fazenda Boa Vista", "Funcionário", true)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("maria@fazenda.com", 1).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "Maria@Fazenda.com ")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "maria@fazenda.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost@fazenda.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.FindByEmail(context.Background(), "ghost@fazenda.com")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		repo, _, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		_, err := repo.FindByEmail(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestGormUserRepository_ExistsByEmail_Mock(t *testing.T) {
	repo, mock, mockDB := newMockUserRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("maria@fazenda.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "maria@fazenda.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newUser(t *testing.T, name, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(name, email, "segredo1", "Fazenda Boa Vista")
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newUser(t, "Maria", "maria@fazenda.com")
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@fazenda.com", found.Email)
	assert.Equal(t, identity.RoleEmployee, found.Role)
	assert.True(t, found.VerifyPassword("segredo1"))
}

func TestGormUserRepository_Save_UpdateLastAccess(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newUser(t, "Maria", "maria@fazenda.com")
	require.NoError(t, repo.Save(ctx, user))

	user.RecordAccess(time.Now())
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastAccess)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newUser(t, "Maria", "maria@fazenda.com")))
	require.NoError(t, repo.Save(ctx, newUser(t, "Pedro", "pedro@fazenda.com")))

	users, total, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newUser(t, "Maria", "maria@fazenda.com")
	require.NoError(t, repo.Save(ctx, user))
	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
