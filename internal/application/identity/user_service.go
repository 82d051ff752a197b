package identity

import (
	"context"

	"github.com/gadogest/backend/internal/domain/identity"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo identity.UserRepository
}

func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
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
	if req.Role != "" {
		if err := user.ChangeRole(identity.Role(req.Role)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context, query ListUsersQuery) (*shared.Paginated[UserResponse], error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.Limit > 0 {
		filter.PageSize = query.Limit
	}
	if query.Role != "" {
		filter.Filters["role"] = query.Role
	}
	if query.Farm != "" {
		filter.Filters["farm"] = query.Farm
	}
	filter.Search = query.Search

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email, err := identity.NormalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Este email já está em uso")
			}
			if err := user.ChangeEmail(email); err != nil {
				return nil, err
			}
		}
	}
	if req.Name != nil {
		if err := user.ChangeName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Farm != nil {
		user.Farm = *req.Farm
		user.Touch()
	}
	if req.Role != nil {
		if err := user.ChangeRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Activate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	return s.setActive(ctx, id, true)
}

func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) setActive(ctx context.Context, id uuid.UUID, active bool) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}
