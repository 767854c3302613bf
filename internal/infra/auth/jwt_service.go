// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The admin dashboard uses short-lived access tokens only; a fresh login code
// is the re-authentication path, so no refresh tokens are issued.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    cfg.Auth.AccessTokenTTL,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user's id and role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,                               // Subject (who the token is for)
		"iat":  time.Now().Unix(),                    // Issued At
		"exp":  time.Now().Add(s.accessTTL).Unix(),   // Expiration Time
		"type": "access",                             // Token type, kept for forward compatibility
		"role": role.String(),                        // Role claim for stateless authorization
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
}
