package identity

import (
	"context"
	"crypto/subtle"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	seedAdminName     = "Administrador"
	seedAdminEmail    = "admin@gadogest.com"
	seedAdminPassword = "admin123"
	seedAdminFarm     = "Fazenda GadoGest"
)

// SeedResult reports what the bootstrap call did.
type SeedResult struct {
	Created bool   `json:"criado"`
	Message string `json:"mensagem"`
}

// SeedService creates the initial administrator account. The operation is
// idempotent and gated by a shared bootstrap code.
type SeedService struct {
	userRepo identity.UserRepository
	code     string
	logger   *zap.Logger
}

func NewSeedService(userRepo identity.UserRepository, code string, logger *zap.Logger) *SeedService {
	return &SeedService{
		userRepo: userRepo,
		code:     code,
		logger:   logger,
	}
}

// Bootstrap seeds the admin user when no users exist yet. The code is
// compared in constant time.
func (s *SeedService) Bootstrap(ctx context.Context, code string) (*SeedResult, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.code)) != 1 {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Código de inicialização inválido")
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		return &SeedResult{
			Created: false,
			Message: "Sistema já inicializado",
		}, nil
	}

	admin, err := identity.NewUser(seedAdminName, seedAdminEmail, seedAdminPassword, seedAdminFarm)
	if err != nil {
		return nil, err
	}
	if err := admin.ChangeRole(identity.RoleAdministrator); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("bootstrap admin created", zap.String("email", admin.Email))
	return &SeedResult{
		Created: true,
		Message: "Usuário administrador criado",
	}, nil
}
