package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTypeAccess and TokenTypeRefresh distinguish the two token kinds so a
	// refresh token cannot be replayed as an access token.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CreateAccessToken issues a short-lived access token carrying the user ID.
func CreateAccessToken(userID, secret string, ttl time.Duration) (string, error) {
	return createToken(userID, secret, TokenTypeAccess, ttl)
}

// CreateRefreshToken issues a long-lived refresh token for the user.
func CreateRefreshToken(userID, secret string, ttl time.Duration) (string, error) {
	return createToken(userID, secret, TokenTypeRefresh, ttl)
}

func createToken(userID, secret, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"type": tokenType,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractUserIDFromToken validates an access token and returns the user ID.
func ExtractUserIDFromToken(tokenString, secret string) (string, error) {
	return extractUserID(tokenString, secret, TokenTypeAccess)
}

// ExtractUserIDFromRefreshToken validates a refresh token and returns the user ID.
func ExtractUserIDFromRefreshToken(tokenString, secret string) (string, error) {
	return extractUserID(tokenString, secret, TokenTypeRefresh)
}

func extractUserID(tokenString, secret, wantType string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return "", errors.New("wrong token type")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", errors.New("token missing subject")
	}

	return userID, nil
}
