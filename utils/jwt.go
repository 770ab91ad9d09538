package utils

import (
	"errors"
	"time"

	"telecare/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "telecare-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject (a patient,
// doctor or admin id) and role. The token expires after the given duration.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// SubjectAndRole extracts the subject and role claims from a valid token.
func SubjectAndRole(tokenString string) (string, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if subject == "" {
		return "", "", errors.New("token missing subject")
	}
	return subject, role, nil
}
