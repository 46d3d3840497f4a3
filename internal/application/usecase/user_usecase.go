package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// UserUseCase admin-side user management: create, list, get, update, delete.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create validates and persists a new user with a bcrypt-hashed password.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name is required")
	}
	if !entity.ValidEmail(in.Email) {
		return nil, domain.Validationf("email must be a valid address")
	}
	if len(in.Password) < 8 {
		return nil, domain.Validationf("password must have at least 8 characters")
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.Validationf("role must be one of super_admin, admin, user")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// GetByID returns the user or (nil, nil) when absent.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// List returns all users, optionally narrowed by role and substring search.
func (uc *UserUseCase) List(ctx context.Context, role, search string) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, entity.UserFilter{Role: role, Search: search})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *userResponse(u))
	}
	return out, nil
}

// Update applies a partial merge of the provided fields. Role changes are
// reserved to administrative callers; a user editing their own profile
// cannot escalate. Returns ErrNotFound when no document matched.
func (uc *UserUseCase) Update(ctx context.Context, callerRole, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	patch := entity.UserPatch{Name: in.Name}
	if in.Email != nil {
		if !entity.ValidEmail(*in.Email) {
			return nil, domain.Validationf("email must be a valid address")
		}
		patch.Email = in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.Validationf("role must be one of super_admin, admin, user")
		}
		if !entity.AdminRole(callerRole) {
			return nil, domain.ErrForbidden
		}
		patch.Role = in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.Validationf("password must have at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	matched, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return uc.GetByID(ctx, id)
}

// Delete removes the user; ErrNotFound when no document matched.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func userResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
