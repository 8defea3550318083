package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs a bearer token binding the user id to the username
// subject. Tokens carry no expiry; possession of one is a live session.
func GenerateJWT(userID uint, username, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"sub":     username,
	})
	return token.SignedString([]byte(secret))
}

// ParseJWT verifies the signature and returns the user id and subject claims.
func ParseJWT(tokenString, secret string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	id, ok := claims["user_id"].(float64) // numbers decode as float64
	if !ok {
		return 0, "", errors.New("missing user_id claim")
	}
	subject, _ := claims["sub"].(string)

	return uint(id), subject, nil
}
