package usecase

import (
	"station-booking/internal/pkg/jwt"
)

// Identity is the signed-in user as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
