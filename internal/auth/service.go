package auth

import (
	"errors"
	"fmt"
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when a token fails parsing or signature checks
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingTenant is returned when a token carries no tenant id
	ErrMissingTenant = errors.New("token has no tenant id")
)

// AuthService issues and validates the JWT tokens used by the API
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
}

// Claims are the JWT claims carried by every API token. TenantID scopes every
// request: a request can only ever see rows of its token's tenant.
type Claims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenTTL time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// GenerateToken creates a signed JWT for a crew member
func (s *AuthService) GenerateToken(tenantID uuid.UUID, member *models.CrewMember) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   member.ID.String(),
		TenantID: tenantID.String(),
		Email:    member.Email,
		Role:     string(member.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   member.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a JWT token
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TenantID == "" {
		return nil, ErrMissingTenant
	}
	if _, err := uuid.Parse(claims.TenantID); err != nil {
		return nil, fmt.Errorf("%w: malformed tenant id", ErrInvalidToken)
	}

	return claims, nil
}
