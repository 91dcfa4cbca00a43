package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens, and claim
	// mismatches. Collapses to a generic 401 externally.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrTokenExpired is distinguished from ErrInvalidToken for server-side
	// diagnostics only; callers see the same unauthenticated outcome.
	ErrTokenExpired = errors.New("session token expired")
)

// Claims represents the session token claims. Sessions are stateless: the
// token is the entire session record, so rotating the signing secret
// invalidates every outstanding session.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// GenerateToken creates a signed session token for the given user with an
// absolute expiry of now plus the configured session lifetime.
func GenerateToken(userID int64, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "isdnc",
			Audience:  jwt.ClaimStrings{"isdnc-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a session token. The signature is
// checked before expiry, so a tampered token is always ErrInvalidToken
// regardless of its claimed expiry.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("isdnc"), jwt.WithAudience("isdnc-api"))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
