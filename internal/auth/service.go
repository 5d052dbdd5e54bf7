package auth

import (
	"errors"
	"fmt"
	"time"

	"capstone-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of tokens minted by GenerateJWT
const DefaultTokenTTL = time.Hour

// AuthService verifies the bearer tokens issued by the identity provider
type AuthService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// AuthClaims represents the JWT claims carried by every API request
type AuthClaims struct {
	UserID uuid.UUID       `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(secret, issuer string) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &AuthService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    DefaultTokenTTL,
	}, nil
}

// GenerateJWT mints a signed token for a user. Production tokens come from the
// identity provider; this is used by the seed script and tests.
func (s *AuthService) GenerateJWT(userID uuid.UUID, role models.UserRole) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == uuid.Nil || !claims.Role.IsValid() {
		return nil, errors.New("token is missing user_id or role")
	}
	return claims, nil
}
