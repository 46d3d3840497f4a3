package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
	"github.com/trackops/assettrack-api/pkg/jwt"
)

// Reset tokens are 32 random bytes, hex encoded, valid for one hour and
// cleared on first successful use.
const (
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour
)

// JWTConfig settings for token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication flows: register, login, forgot/reset password.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	jwtCfg   JWTConfig
	resetURL string
}

// NewAuthUseCase builds the auth use case. resetURL is the frontend page the
// emailed link points to; email and token ride along as query params.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, resetURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, resetURL: resetURL}
}

// Register creates a user: validates email/role, hashes the password with
// bcrypt and persists. Returns ErrEmailAlreadyExists on a duplicate email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidEmail(in.Email) {
		return nil, domain.Validationf("email must be a valid address")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.Validationf("role must be one of super_admin, admin, user")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
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
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + user.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ForgotPassword looks up the user by email, stores a fresh reset token with
// a one hour expiry and mails the reset link. Returns ErrUserNotFound when
// no account matches; no token is written in that case.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenTTL)

	if err := uc.userRepo.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	link := fmt.Sprintf("%s?email=%s&token=%s", uc.resetURL, url.QueryEscape(user.Email), token)
	return uc.mailer.SendPasswordReset(ctx, user.Email, link)
}

// ResetPassword consumes a pending reset token. It succeeds only when email,
// token and an unexpired expiry all match one user; on success the password
// hash is replaced and the token cleared, making the token single use.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.Validationf("newPassword must have at least 8 characters")
	}
	user, err := uc.userRepo.GetByResetToken(ctx, in.Email, in.Token, time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.ResetPassword(ctx, user.ID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
