package identity

import (
	"context"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*User, int64, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
