package service

import (
	"fmt"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/config"
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates access tokens.
type AuthService interface {
	CreateJWT(userID, role string) (string, error)
	ValidateJWT(tokenString string) (*dto.AuthClaims, error)
}

type authService struct {
	cfg config.JWTConfig
}

func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) CreateJWT(userID, role string) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    userID,
		Role:      role,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateJWT(tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.NewUnauthorizedError("Invalid or expired token.")
	}
	if claims.TokenType != "access" {
		return nil, domain.NewUnauthorizedError("Invalid token type.")
	}
	return claims, nil
}
