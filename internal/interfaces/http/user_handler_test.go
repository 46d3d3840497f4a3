package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	apphttp "github.com/trackops/assettrack-api/internal/interfaces/http"
)

// memUserRepo is a minimal in-memory UserRepository for handler tests.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, _ entity.UserFilter) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, p entity.UserPatch) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	return true, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *memUserRepo) SetResetToken(_ context.Context, _, _ string, _ time.Time) error { return nil }
func (r *memUserRepo) GetByResetToken(_ context.Context, _, _ string, _ time.Time) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) ResetPassword(_ context.Context, _, _ string) error { return nil }

// newUsersApp mounts the full router with only the user use case wired.
func newUsersApp(repo *memUserRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(repo),
		JWTSecret: testJWTSecret,
	})
	return app
}

func seedUser(t *testing.T, repo *memUserRepo, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Seeded", Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRoutes_ListNeedsAdmin(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "a@example.com", entity.RoleUser)
	app := newUsersApp(repo)

	resp := doRequest(t, app, "/api/users/", tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	denied, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(denied), "a@example.com")

	resp2 := doRequest(t, app, "/api/users/", tokenForRole(t, entity.RoleAdmin))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var users []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&users))
	require.Len(t, users, 1)
	// Credential material never leaves the API.
	_, hasHash := users[0]["passwordHash"]
	assert.False(t, hasHash)
}

func TestUserRoutes_GetOwnProfile(t *testing.T) {
	repo := newMemUserRepo()
	app := newUsersApp(repo)

	// The token's user id must match the path param.
	u := &entity.User{Name: "Self", Email: "self@example.com", PasswordHash: "x", Role: entity.RoleUser}
	require.NoError(t, repo.Create(context.Background(), u))

	tok, err := tokenFor(u.ID, entity.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/api/users/"+u.ID, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	other := seedUser(t, repo, "other@example.com", entity.RoleUser)
	resp2 := doRequest(t, app, "/api/users/"+other.ID, "Bearer "+tok)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestUserRoutes_DeleteNeedsSuperAdmin(t *testing.T) {
	repo := newMemUserRepo()
	victim := seedUser(t, repo, "victim@example.com", entity.RoleUser)
	app := newUsersApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+victim.ID, nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req2 := httptest.NewRequest(http.MethodDelete, "/api/users/"+victim.ID, nil)
	req2.Header.Set("Authorization", tokenForRole(t, entity.RoleSuperAdmin))
	resp2, err := app.Test(req2, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Empty(t, repo.users)
}

func TestUserRoutes_UpdateOwnName(t *testing.T) {
	repo := newMemUserRepo()
	app := newUsersApp(repo)

	u := &entity.User{Name: "Before", Email: "me@example.com", PasswordHash: "x", Role: entity.RoleUser}
	require.NoError(t, repo.Create(context.Background(), u))
	tok, err := tokenFor(u.ID, entity.RoleUser)
	require.NoError(t, err)

	body := strings.NewReader(`{"name":"After"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+u.ID, body)
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "After", repo.users[u.ID].Name)
}
