package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	TokenTypeAccess = "access"
)

var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and validates bearer tokens for the fixed admin
// credential pair. A real authentication provider is out of scope.
type AuthService interface {
	// Login returns a signed access token when the credentials equal the
	// configured admin pair.
	Login(ctx context.Context, username, password string) (string, error)
	CreateToken(identity string, ttl time.Duration, tokenType string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authService struct {
	appConfig *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(appConfig *config.Config) (AuthService, error) {
	if len(appConfig.JWT.SecretKey) == 0 {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &authService{appConfig: appConfig}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	admin := s.appConfig.Admin
	if username != admin.Username || password != admin.Password {
		logger.Get().Warn("Login rejected", zap.String("username", username))
		return "", domain.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.CreateToken(admin.Username, s.appConfig.JWT.AccessTokenTTL, TokenTypeAccess)
	if err != nil {
		return "", domain.NewInternalError("Failed to create access token", err)
	}
	logger.Get().Info("Admin logged in", zap.String("identity", admin.Username))
	return token, nil
}

func (s *authService) CreateToken(identity string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		Identity:  identity,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   identity,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("Token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
