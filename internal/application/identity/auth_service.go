package identity

import (
	"context"
	"time"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// AuthService handles registration, login and the authenticated profile.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account. The very first user of the system becomes
// an administrator; everyone after that starts as a regular employee.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, shared.NewDomainError("PASSWORD_MISMATCH", "As senhas não coincidem")
	}

	email, err := identity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Este email já está em uso")
	}

	user, err := identity.NewUser(req.Name, email, req.Password, req.Farm)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		if err := user.ChangeRole(identity.RoleAdministrator); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

// Login authenticates the user. Unknown email, wrong password and inactive
// accounts all produce the same generic error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email, err := identity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.Active || !user.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issueToken(ctx context.Context, user *identity.User) (*LoginResponse, error) {
	user.RecordAccess(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:      ToUserResponse(user),
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}, nil
}
