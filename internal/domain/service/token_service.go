package service

import (
	"depot/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates admin dashboard access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user's
	// id and role claims.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
