package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trackops/assettrack-api/internal/application/auth"
	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// fakeUserRepo is an in-memory UserRepository for the auth flows.
type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ entity.UserFilter) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, p entity.UserPatch) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	return true, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, id, token string, expiry time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.ResetToken = token
	exp := expiry
	u.ResetTokenExpiry = &exp
	return nil
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, email, token string, now time.Time) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.ResetToken != "" && u.ResetToken == token &&
			u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ResetPassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExpiry = nil
	return nil
}

// fakeMailer records the last reset link instead of sending mail.
type fakeMailer struct {
	to   string
	link string
	sent int
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.to = to
	m.link = resetLink
	m.sent++
	return nil
}

func newTestUseCase() (*auth.AuthUseCase, *fakeUserRepo, *fakeMailer) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, mailer, auth.JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "assettrack-test",
	}, "https://app.example.com/reset-password")
	return uc, repo, mailer
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, role string) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestRegister_DefaultsRoleToUser(t *testing.T) {
	uc, _, _ := newTestUseCase()
	user := register(t, uc, "alice@example.com", "password123", "")
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_RejectsInvalidEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "bob@example.com",
		Password: "password123",
		Role:     "manager",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()
	register(t, uc, "carol@example.com", "password123", "")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "carol@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_HappyPath(t *testing.T) {
	uc, _, _ := newTestUseCase()
	register(t, uc, "dave@example.com", "password123", entity.RoleAdmin)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dave@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()
	register(t, uc, "erin@example.com", "password123", "")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "erin@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestForgotPassword_StoresTokenAndMailsLink(t *testing.T) {
	uc, repo, mailer := newTestUseCase()
	user := register(t, uc, "frank@example.com", "password123", "")

	require.NoError(t, uc.ForgotPassword(context.Background(), "frank@example.com"))

	stored := repo.users[user.ID]
	assert.NotEmpty(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiry)
	assert.True(t, stored.ResetTokenExpiry.After(time.Now()))

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "frank@example.com", mailer.to)
	assert.Contains(t, mailer.link, "token="+stored.ResetToken)
}

func TestForgotPassword_UnknownEmail_WritesNothing(t *testing.T) {
	uc, repo, mailer := newTestUseCase()
	register(t, uc, "grace@example.com", "password123", "")

	err := uc.ForgotPassword(context.Background(), "unknown@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, mailer.sent)
	for _, u := range repo.users {
		assert.Empty(t, u.ResetToken)
	}
}

func TestResetPassword_HappyPathAndSingleUse(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	user := register(t, uc, "heidi@example.com", "password123", "")
	require.NoError(t, uc.ForgotPassword(context.Background(), "heidi@example.com"))
	token := repo.users[user.ID].ResetToken

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "heidi@example.com",
		Token:       token,
		NewPassword: "new-password-456",
	})
	require.NoError(t, err)

	stored := repo.users[user.ID]
	assert.Empty(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpiry)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-456")))

	// The token is cleared on first use; a replay must fail.
	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "heidi@example.com",
		Token:       token,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	user := register(t, uc, "ivan@example.com", "password123", "")
	require.NoError(t, uc.ForgotPassword(context.Background(), "ivan@example.com"))

	// Force expiry into the past.
	past := time.Now().Add(-time.Minute)
	repo.users[user.ID].ResetTokenExpiry = &past

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Token:       repo.users[user.ID].ResetToken,
		NewPassword: "new-password-456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_ShortPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()
	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "judy@example.com",
		Token:       strings.Repeat("a", 64),
		NewPassword: "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
