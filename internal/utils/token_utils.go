package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds embedded in the token_type claim. Access and refresh tokens
// are structurally identical; callers must check the kind themselves.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// TokenClaims are the claims carried by every issued token: the registered
// set plus a kind discriminator.
type TokenClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// UserID returns the numeric subject of the token.
func (c *TokenClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return id, nil
}

// GenerateToken issues a signed HS256 token for the given user and kind.
func GenerateToken(userID int64, kind string, secret string, ttl time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		TokenType: kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parses a token string and validates its signature and temporal
// claims. Expired tokens fail to parse; there is no grace window. Kind
// checking is deliberately left to the caller.
func ParseToken(tokenString string, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
