package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"hackathon-registration-backend/config"
)

// Sentinel errors for session verification outcomes. ErrSessionExpired is
// distinct so callers can tell "needs re-login" apart from "never logged in".
var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
)

// Verifier turns an opaque session credential into a verified account
// email. The token format is an implementation detail of the identity
// service; callers must not assume anything beyond "opaque string".
type Verifier interface {
	Verify(ctx context.Context, token string) (email string, err error)
}

// JWTVerifier validates HMAC-signed session cookies issued by the
// identity service.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier from the session configuration.
func NewJWTVerifier(cfg *config.SessionConfig) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// Verify parses and validates the session token and extracts the email
// claim. Expired tokens map to ErrSessionExpired; every other failure,
// including a missing or malformed email claim, maps to ErrInvalidSession.
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrSessionExpired
		}
		return "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidSession
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidSession
	}
	return email, nil
}
