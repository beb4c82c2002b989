package auth

import (
	"collab-hub/domain"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "collab-hub"

// Claims is the identity carried by a bearer token. Tokens are minted by
// the identity provider of the platform; the hub only checks them.
type Claims struct {
	UserID         string   `json:"user_id" validate:"required"`
	OrganizationID string   `json:"organization_id" validate:"required"`
	Name           string   `json:"name"`
	Avatar         string   `json:"avatar,omitempty"`
	Roles          []string `json:"roles" validate:"required,min=1,dive,oneof=admin member client"`
	jwt.RegisteredClaims
}

// User is the caller as seen by the services. The strongest role wins.
func (c Claims) User() domain.User {
	user := domain.User{
		ID:             c.UserID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Avatar:         c.Avatar,
		Role:           domain.RoleClient,
	}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleMember} {
		if slices.Contains(c.Roles, string(role)) {
			user.Role = role
			break
		}
	}
	return user
}

// TokenManager signs and checks HS256 tokens with a shared secret.
type TokenManager struct {
	secret   []byte
	duration time.Duration
}

func NewTokenManager(secret string, duration time.Duration) (*TokenManager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 bytes, got %d", len(secret))
	}
	return &TokenManager{secret: []byte(secret), duration: duration}, nil
}

// Generate signs a token for user. Used by the admin tool and tests.
func (m *TokenManager) Generate(user domain.User, roles ...string) (string, error) {
	if len(roles) == 0 {
		roles = []string{string(user.Role)}
	}
	now := time.Now()
	claims := &Claims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Name:           user.Name,
		Avatar:         user.Avatar,
		Roles:          roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate parses tokenString, checks its signature, expiry and issuer,
// then the claims themselves.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if err := validateClaims(*claims); err != nil {
		return nil, err
	}
	return claims, nil
}
