package httpserver_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshop/shop-backend/internal/transport"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email":     "Buyer@Shop.TEST",
		"password":  "secret123",
		"full_name": "Buyer",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	registered := decodeJSON[transport.AuthResponse](t, rec)
	require.NotNil(t, registered.User)
	assert.Equal(t, "buyer@shop.test", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	rec = env.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "buyer@shop.test",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeJSON[transport.AuthResponse](t, rec).Token)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"email": "dup@shop.test", "password": "secret123", "full_name": "Dup"}
	rec := env.doJSON(t, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_ValidationFailures(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email": "not-an-email", "password": "secret123", "full_name": "X",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email": "short@shop.test", "password": "123", "full_name": "X",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "known@shop.test", "user")

	rec := env.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email": "known@shop.test", "password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email": "ghost@shop.test", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_ResponseHidesPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "hidden@shop.test", "user")

	rec := env.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email": "hidden@shop.test", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
