package auth

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookceleb/internal/admins"
	"bookceleb/internal/shared/config"
	"bookceleb/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAdminCode   = errors.New("invalid admin code")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a digit")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*admins.Profile, error)
}

type service struct {
	repo   Repository
	cfg    *config.Config
	logger *logger.Logger
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		cfg:    cfg,
		logger: logger.GetDefault(),
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	// Signup is invite-only. The code check runs before anything touches
	// the database.
	if s.cfg.AdminCode == "" || req.AdminCode != s.cfg.AdminCode {
		s.logger.LogAuthFailure(ctx, req.Email, "invalid admin code")
		return nil, ErrInvalidAdminCode
	}

	if !isStrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &admins.Profile{
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
		Role:     admins.RoleAdmin,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokenPair(profile)
	if err != nil {
		return nil, err
	}

	s.logger.LogAuthSuccess(ctx, profile.ID.String(), "signup")
	return &AuthResponse{Profile: profile, Tokens: *tokens}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	profile, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			s.logger.LogAuthFailure(ctx, req.Email, "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		s.logger.LogAuthFailure(ctx, req.Email, "wrong password")
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(profile)
	if err != nil {
		return nil, err
	}

	s.logger.LogAuthSuccess(ctx, profile.ID.String(), "login")
	return &AuthResponse{Profile: profile, Tokens: *tokens}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Re-read the profile so a role change invalidates old refresh tokens.
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.generateTokenPair(profile)
}

func (s *service) GetProfile(ctx context.Context, id uuid.UUID) (*admins.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// isStrongPassword enforces the panel's password policy: at least 8
// characters with an uppercase letter, a lowercase letter and a digit.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func (s *service) generateTokenPair(profile *admins.Profile) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := s.signToken(jwt.MapClaims{
		"user_id": profile.ID.String(),
		"email":   profile.Email,
		"role":    string(profile.Role),
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWT.JWTExpiresIn).Unix(),
	})
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(jwt.MapClaims{
		"user_id": profile.ID.String(),
		"type":    "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWT.RefreshExpiresIn).Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

func (s *service) parseToken(tokenString, expectedType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != expectedType {
		return nil, ErrInvalidToken
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
