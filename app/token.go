package app

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/models"
)

// Claims dibawa di dalam bearer token. SessionID menunjuk sesi Redis;
// token tanpa sesi hidup dianggap sudah logout.
type Claims struct {
	UserID    string      `json:"uid"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	SessionID string      `json:"sid"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, u *models.User, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
