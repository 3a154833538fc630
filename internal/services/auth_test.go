package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
)

func setupAuthConfig() {
	viper.Set("argon2.salt_length", 16)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 64*1024)
	viper.Set("argon2.threads", 4)
	viper.Set("argon2.key_length", 32)
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 24)
}

func TestAuthService_Register(t *testing.T) {
	setupAuthConfig()
	ctx := context.Background()
	service := NewAuthService(repository.NewMemoryUserRepository(), nil)

	t.Run("successful registration", func(t *testing.T) {
		resp, err := service.Register(ctx, RegisterRequest{
			Name:     "Asha Rao",
			Email:    "Asha@Example.com",
			Phone:    "+919800000000",
			Password: "password123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "asha@example.com", resp.User.Email)
		assert.Equal(t, models.RoleCustomer, resp.User.Role)
		assert.NotEqual(t, "password123", resp.User.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := service.Register(ctx, RegisterRequest{
			Name:     "Someone Else",
			Email:    "asha@example.com",
			Phone:    "+919800000001",
			Password: "password456",
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := service.Register(ctx, RegisterRequest{Email: "bad", Password: "123"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	setupAuthConfig()
	ctx := context.Background()
	service := NewAuthService(repository.NewMemoryUserRepository(), nil)

	_, err := service.Register(ctx, RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "+919800000000",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		resp, err := service.Login(ctx, LoginRequest{Email: "ASHA@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "asha@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "wrongpassword"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("user not found", func(t *testing.T) {
		_, err := service.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	setupAuthConfig()
	ctx := context.Background()

	t.Run("blacklists token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		service := NewAuthService(repository.NewMemoryUserRepository(), db)

		mock.ExpectSet("blacklist:abc.def.ghi", "1", 24*time.Hour).SetVal("OK")

		require.NoError(t, service.Logout(ctx, "Bearer abc.def.ghi"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is internal", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		service := NewAuthService(repository.NewMemoryUserRepository(), db)

		mock.ExpectSet("blacklist:abc", "1", 24*time.Hour).SetErr(errors.New("connection refused"))

		assert.ErrorIs(t, service.Logout(ctx, "abc"), ErrInternal)
	})

	t.Run("without redis is a no-op", func(t *testing.T) {
		service := NewAuthService(repository.NewMemoryUserRepository(), nil)
		assert.NoError(t, service.Logout(ctx, "Bearer abc"))
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	setupAuthConfig()
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	service := NewAuthService(users, nil)

	require.NoError(t, service.EnsureAdmin(ctx, "admin@homefix.in", "admin-pass"))
	require.NoError(t, service.EnsureAdmin(ctx, "admin@homefix.in", "other-pass"))

	admin, err := users.GetByEmail(ctx, "admin@homefix.in")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, verifyPassword("admin-pass", admin.PasswordHash))

	assert.NoError(t, service.EnsureAdmin(ctx, "", ""))
}

func TestAuthService_GetUser(t *testing.T) {
	setupAuthConfig()
	ctx := context.Background()
	service := NewAuthService(repository.NewMemoryUserRepository(), nil)

	resp, err := service.Register(ctx, RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "+919800000000",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.GetUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", user.Name)

	_, err = service.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPasswordHashing(t *testing.T) {
	setupAuthConfig()

	password := "testpassword"

	hashed, err := hashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)

	assert.True(t, verifyPassword(password, hashed))
	assert.False(t, verifyPassword("wrongpassword", hashed))
	assert.False(t, verifyPassword(password, "not-a-hash"))

	again, err := hashPassword(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hashed, again, "salts must differ")
}

func TestGenerateJWT(t *testing.T) {
	setupAuthConfig()

	token, err := generateJWT(&models.User{ID: "u-1", Email: "asha@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}
