package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/shift-scheduling/internal"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenGenerator creates and validates tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID string, role string) (token string, err error)
	GenerateRefreshToken(userID string, role string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// NewJWTTokenGenerator creates a new JWT token generator. Access and refresh
// tokens are signed with the same session secret.
func NewJWTTokenGenerator(secret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID string, role string) (string, error) {
	return j.signToken(userID, role, j.AccessTokenTTL)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID string, role string) (string, error) {
	return j.signToken(userID, role, j.RefreshTokenTTL)
}

func (j *JWTTokenGenerator) signToken(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.NewUnauthorizedError("token expired", internal.ErrCodeTokenExpired)
		}
		return nil, internal.NewUnauthorizedError("invalid token", internal.ErrCodeInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.NewUnauthorizedError("invalid token", internal.ErrCodeInvalidToken)
	}
	return claims, nil
}

type contextKey string

const contextUserKey contextKey = "auth_user"

// ContextWithUser stores the authenticated account on the request context.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

// UserFromContext returns the authenticated account, if any.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(contextUserKey).(*user.User)
	return u, ok
}
