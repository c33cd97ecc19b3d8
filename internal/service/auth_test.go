package service_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gearshop/shop-backend/internal/models"
	"github.com/gearshop/shop-backend/internal/repo"
	"github.com/gearshop/shop-backend/internal/service"
	"github.com/gearshop/shop-backend/internal/transport"
	"github.com/gearshop/shop-backend/pkg/tokens"
)

func newAuthService(t *testing.T) (*service.AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}))

	return service.NewAuthService(repo.NewGormUserRepo(db), []byte("test-jwt-secret")), db
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, transport.RegisterRequest{
		Email:    "  New.User@Example.COM ",
		Password: "secret123",
		FullName: "New User",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, "new.user@example.com", res.User.Email, "email is normalized before the write")
	assert.Equal(t, []string{"user"}, []string(res.User.Roles))
	assert.True(t, res.User.IsActive)
	assert.NotEqual(t, "secret123", res.User.Password, "password is stored hashed")

	claims, err := tokens.AccessClaimsFromToken(res.Token, []byte("test-jwt-secret"))
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.Subject)
	assert.Equal(t, []string{"user"}, claims.Roles)
}

func TestAuthService_Register_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := transport.RegisterRequest{Email: "dup@shop.test", Password: "secret123", FullName: "Dup"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, transport.RegisterRequest{
		Email:    "buyer@shop.test",
		Password: "secret123",
		FullName: "Buyer",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, transport.LoginRequest{Email: "Buyer@Shop.TEST", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "buyer@shop.test", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "ghost@shop.test", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUserRejected(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, transport.RegisterRequest{
		Email:    "blocked@shop.test",
		Password: "secret123",
		FullName: "Blocked",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", res.User.ID).Update("is_active", false).Error)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "blocked@shop.test", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
