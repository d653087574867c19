package app

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/onu24/learnsphere-v1/internal/clock"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// The storefront bootstraps its admin account by email, matching the
// original deployment.
const bootstrapAdminEmail = "admin@learnsphere.com"

const defaultTokenTTL = 24 * time.Hour

// UserRepository is the storage contract for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

// Identity is the authenticated caller extracted from a token.
type Identity struct {
	UserID string
	Role   domain.Role
}

// AuthService registers accounts and issues signed session tokens.
type AuthService struct {
	repo     UserRepository
	secret   []byte
	clock    clock.Clock
	tokenTTL time.Duration
}

type AuthServiceOption func(*AuthService)

// WithTokenTTL overrides the session token lifetime.
func WithTokenTTL(d time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		if d > 0 {
			s.tokenTTL = d
		}
	}
}

func NewAuthService(repo UserRepository, secret []byte, clk clock.Clock, opts ...AuthServiceOption) *AuthService {
	svc := &AuthService{
		repo:     repo,
		secret:   secret,
		clock:    clk,
		tokenTTL: defaultTokenTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return domain.User{}, domain.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	role := domain.RoleUser
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == bootstrapAdminEmail {
		role = domain.RoleAdmin
	}

	user := domain.User{
		ID:           newID(),
		Username:     in.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login checks credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	if email == "" || password == "" {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.User{}, err
	}
	return signed, user, nil
}

// ParseToken validates a session token and returns the caller identity.
func (s *AuthService) ParseToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return Identity{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, domain.ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return Identity{}, domain.ErrInvalidToken
	}
	return Identity{UserID: sub, Role: domain.Role(role)}, nil
}
