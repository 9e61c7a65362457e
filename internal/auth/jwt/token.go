package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles recognised by the assembler.
const (
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

const (
	defaultTTL    = time.Hour
	defaultIssuer = "exam-assembler"
)

// Claims for JWT tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IsStaff reports whether the bearer may change exam contents.
func (c *Claims) IsStaff() bool {
	return c != nil && c.Role == RoleStaff
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoSecret     = errors.New("jwt secret not configured")
)

// TokenConfig holds JWT signing configuration.
type TokenConfig struct {
	Secret    []byte
	AccessTTL time.Duration // default: 1 hour
	Issuer    string
}

// Manager handles JWT token generation and validation.
type Manager struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
	now       func() time.Time
}

// NewManager creates a JWT token manager.
func NewManager(cfg TokenConfig) *Manager {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = defaultTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultIssuer
	}
	return &Manager{
		secret:    cfg.Secret,
		accessTTL: cfg.AccessTTL,
		issuer:    cfg.Issuer,
		now:       time.Now,
	}
}

// Enabled reports whether a signing secret is present.
func (m *Manager) Enabled() bool {
	return m != nil && len(m.secret) > 0
}

// GenerateAccessToken creates a short-lived access token for subject.
func (m *Manager) GenerateAccessToken(subject, role string) (string, error) {
	if !m.Enabled() {
		return "", ErrNoSecret
	}
	now := m.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateAccessToken parses and validates an access token.
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	if !m.Enabled() {
		return nil, ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
