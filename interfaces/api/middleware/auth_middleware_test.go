package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tasks-api/domain/models"
	"tasks-api/domain/repositories"
	"tasks-api/pkg/token"
	"tasks-api/pkg/utils"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == nil {
		r.users = make(map[uuid.UUID]*models.User)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func newProtectedApp(t *testing.T, tokens *token.Manager, users repositories.UserRepository) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/whoami", Protected(tokens, users), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.InternalServerErrorResponse(c)
		}
		return utils.SuccessResponse(c, fiber.Map{"email": user.Email})
	})
	return app
}

func get(t *testing.T, app *fiber.App, authHeader string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	resp.Body.Close()
	return resp, string(body)
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	tokens := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	users := &stubUserRepo{}

	user := &models.User{ID: uuid.New(), Email: "alice@example.com", FullName: "Alice"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	signed, err := tokens.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	app := newProtectedApp(t, tokens, users)
	resp, body := get(t, app, "Bearer "+signed)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, body)
	}
}

// Every rejection must carry the exact same status and body so the
// response does not reveal which check failed.
func TestProtectedRejectionsAreUniform(t *testing.T) {
	tokens := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	expired := token.NewManager(token.Config{Secret: "test-secret", TTL: -time.Minute})
	foreign := token.NewManager(token.Config{Secret: "other-secret", TTL: time.Hour})
	users := &stubUserRepo{}

	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	expiredToken, err := expired.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	foreignToken, err := foreign.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	ghostToken, err := tokens.Issue(uuid.New(), "ghost@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	app := newProtectedApp(t, tokens, users)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"bare token without scheme", "garbage"},
		{"malformed token", "Bearer garbage"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signature", "Bearer " + foreignToken},
		{"subject not in store", "Bearer " + ghostToken},
	}

	var referenceBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := get(t, app, tc.header)
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}
			if referenceBody == "" {
				referenceBody = body
				return
			}
			if body != referenceBody {
				t.Fatalf("body differs between failure kinds:\n%s\nvs\n%s", body, referenceBody)
			}
		})
	}
}
