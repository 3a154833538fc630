package services

import (
	"context"
	cryptorand "crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"

	"github.com/homefix/backend/internal/models"
	"github.com/homefix/backend/internal/repository"
)

// AuthService is the identity store: registration, credential checks and token revocation.
type AuthService struct {
	users     repository.UserRepository
	redis     *redis.Client
	validator *ValidationHelper
	now       func() time.Time
}

// LoginRequest represents the login request payload
// @Description Login request structure
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"asha@example.com"` // User email
	Password string `json:"password" validate:"required,min=6" example:"password123"`   // User password
}

// RegisterRequest represents the registration request payload
// @Description Registration request structure
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2" example:"Asha Rao"`          // Full name
	Email    string `json:"email" validate:"required,email" example:"asha@example.com"` // User email address
	Phone    string `json:"phone" validate:"required" example:"+919800000000"`          // Phone number
	Password string `json:"password" validate:"required,min=6" example:"password123"`   // User password
}

// AuthResponse represents the authentication response
// @Description Authentication response structure
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // JWT token
	User  *models.User `json:"user"`                                                    // User information
}

func NewAuthService(users repository.UserRepository, redisClient *redis.Client) *AuthService {
	viper.SetDefault("jwt.secret_key", "homefix-dev-secret")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("argon2.time", 1)
	viper.SetDefault("argon2.memory", 64*1024)
	viper.SetDefault("argon2.threads", 4)
	viper.SetDefault("argon2.key_length", 32)
	viper.SetDefault("argon2.salt_length", 16)

	return &AuthService{
		users:     users,
		redis:     redisClient,
		validator: NewValidationHelper(),
		now:       time.Now,
	}
}

// Register creates a customer account and signs a token for it
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.validator.validateInput(&req, "invalid registration request"); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, req.Name, req.Email, req.Phone, req.Password, models.RoleCustomer)
	if err != nil {
		return nil, err
	}

	token, err := generateJWT(user)
	if err != nil {
		log.Printf("[AUTH] JWT generation failed for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	log.Printf("[AUTH] Registration successful for user %s", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.validateInput(&req, "invalid login request"); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("[AUTH] User not found for email: %s", req.Email)
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err != nil {
		return nil, fromRepository(err, "user "+req.Email)
	}

	if !verifyPassword(req.Password, user.PasswordHash) {
		log.Printf("[AUTH] Invalid password for user: %s", user.ID)
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := generateJWT(user)
	if err != nil {
		log.Printf("[AUTH] JWT generation failed for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	log.Printf("[AUTH] Login successful for user %s", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

// Logout blacklists the token until it would have expired anyway.
// Without Redis it is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" || s.redis == nil {
		return nil
	}

	expiry := time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour
	if err := s.redis.Set(ctx, BlacklistKey(token), "1", expiry).Err(); err != nil {
		log.Printf("[AUTH] Failed to blacklist token: %v", err)
		return fmt.Errorf("%w: blacklist token: %v", ErrInternal, err)
	}
	return nil
}

// GetUser loads the account behind a token
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, "user "+id)
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin when the email is not taken yet
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fromRepository(err, "user "+email)
	}

	user, err := s.createUser(ctx, "Administrator", email, "", password, models.RoleAdmin)
	if errors.Is(err, ErrConflict) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("[AUTH] Bootstrap admin %s created", user.Email)
	return nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, phone, password, role string) (*models.User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		log.Printf("[AUTH] Password hashing failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: hashedPassword,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.Printf("[AUTH] User creation failed for %s: %v", email, err)
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fromRepository(err, "user "+email)
	}
	return user, nil
}

// BlacklistKey is the Redis key marking a revoked token
func BlacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}

func generateJWT(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(viper.GetString("jwt.secret_key")))
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := cryptorand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyPassword(password, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, computedHash) == 1
}
