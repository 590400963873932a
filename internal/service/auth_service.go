package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/learnhub-backend/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// Role distinguishes the two account populations. Each role signs with its
// own secret, so a token minted for one role cannot pass the other's gate.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Claims extends JWT standard claims with the token's role. Subject carries
// the principal's account id.
type Claims struct {
	jwt.RegisteredClaims
	TokenType Role `json:"token_type"`
}

// AuthService handles password hashing and per-role token mint/verify.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// HashPassword hashes a password with the configured bcrypt cost.
// Adjustable via BCRYPT_COST env.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a JWT for a principal, signed with the role's secret.
func (s *AuthService) GenerateToken(role Role, accountID string) (string, error) {
	secret, err := s.secretFor(role)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a JWT against the given role's secret and returns the
// claims. Tokens minted for the other role fail the signature check; the
// token_type claim is checked as well in case the secrets are ever shared.
func (s *AuthService) ValidateToken(tokenStr string, role Role) (*Claims, error) {
	secret, err := s.secretFor(role)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != role {
		return nil, errors.New("token role mismatch")
	}
	return claims, nil
}

func (s *AuthService) secretFor(role Role) ([]byte, error) {
	switch role {
	case RoleUser:
		return []byte(s.cfg.JWTUserSecret), nil
	case RoleAdmin:
		return []byte(s.cfg.JWTAdminSecret), nil
	default:
		return nil, ErrUnknownRole
	}
}
