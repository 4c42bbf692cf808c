package controllers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signAccessToken emite el JWT de acceso (HS256, claims sub/iat/exp).
func signAccessToken(userID int64, now time.Time) (string, time.Time, error) {
	exp := now.Add(time.Duration(conf.Security.AccessTTLMinutes) * time.Minute)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(conf.Security.JwtSecret))
	return signed, exp, err
}

// parseAccessToken valida firma y expiración y devuelve el sub.
func parseAccessToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(conf.Security.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("token inválido")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("claims inválidos")
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, fmt.Errorf("sub inválido")
	}
	return int64(sub), nil
}
