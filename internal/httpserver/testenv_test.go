package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gearshop/shop-backend/internal/events"
	"github.com/gearshop/shop-backend/internal/httpserver"
	authmw "github.com/gearshop/shop-backend/internal/middleware/auth"
	"github.com/gearshop/shop-backend/internal/models"
	"github.com/gearshop/shop-backend/internal/repo"
	"github.com/gearshop/shop-backend/internal/service"
	"github.com/gearshop/shop-backend/pkg/hash"
	"github.com/gearshop/shop-backend/pkg/tokens"
)

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	secret := []byte("test-jwt-secret")
	userRepo := repo.NewGormUserRepo(db)

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		Products: &httpserver.ProductHTTP{
			Svc:      service.NewProductService(repo.NewGormProductRepo(db)),
			Producer: events.NewProducer(nil, ""),
		},
		Auth:   &httpserver.AuthHTTP{Svc: service.NewAuthService(userRepo, secret)},
		AuthMW: authmw.NewMiddleware(secret, userRepo),
	})

	return &testEnv{E: e, DB: db, Secret: secret}
}

// seedUser inserts a user directly and returns a signed token for it.
func (env *testEnv) seedUser(t *testing.T, email string, roles ...string) (*models.User, string) {
	t.Helper()

	pwHash, err := hash.HashPassword("secret123")
	require.NoError(t, err)

	u := &models.User{
		Email:    email,
		Password: pwHash,
		FullName: "Test User",
		IsActive: true,
		Roles:    roles,
	}
	require.NoError(t, repo.NewGormUserRepo(env.DB).Create(context.Background(), u))

	token, err := tokens.NewAccessToken(env.Secret, u.ID, u.Roles, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return u, token
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func createProductBody(title string, images []string) map[string]any {
	body := map[string]any{
		"title":  title,
		"price":  29.9,
		"stock":  3,
		"sizes":  []string{"S", "M"},
		"gender": "men",
	}
	if images != nil {
		body["images"] = images
	}
	return body
}
