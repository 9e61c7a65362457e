package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/auth/jwt"
)

var (
	ErrLoginDisabled      = errors.New("staff login is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Enabled() bool
	GenerateAccessToken(subject, role string) (string, error)
}

// ServiceOptions configures the staff login service.
type ServiceOptions struct {
	Tokens            TokenIssuer
	StaffPasswordHash string
	AccessTTL         time.Duration
	Logger            zerolog.Logger
}

// Service exchanges the shared staff password for a staff access token.
type Service struct {
	tokens    TokenIssuer
	staffHash string
	accessTTL time.Duration
	logger    zerolog.Logger
}

// NewService wires the login service.
func NewService(opts ServiceOptions) *Service {
	return &Service{
		tokens:    opts.Tokens,
		staffHash: opts.StaffPasswordHash,
		accessTTL: opts.AccessTTL,
		logger:    opts.Logger.With().Str("component", "auth").Logger(),
	}
}

// LoginRequest identifies the operator asking for a token.
type LoginRequest struct {
	Subject  string `json:"subject" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned on a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login verifies the staff password and issues a staff token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	if s.staffHash == "" || s.tokens == nil || !s.tokens.Enabled() {
		return TokenResponse{}, ErrLoginDisabled
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return TokenResponse{}, ErrInvalidCredentials
	}
	if err := verifyStaffPassword(s.staffHash, req.Password); err != nil {
		s.logger.Warn().Str("subject", subject).Msg("staff login rejected")
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(subject, jwt.RoleStaff)
	if err != nil {
		return TokenResponse{}, err
	}
	s.logger.Info().Str("subject", subject).Msg("staff token issued")
	return TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
