package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ratehub/internal/domain/entity"
)

// Claims defines the custom claims carried by the signed access token.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed
// bearer credential presented on each authenticated request.
type TokenService interface {
	// Generate creates a signed token embedding the user's ID and role.
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims on success.
	Validate(tokenString string) (*Claims, error)
}
