package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"roamly/pkg/config"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMaker signs and verifies bearer tokens. The key comes from the
// startup config; there is no ambient fallback secret.
type JWTMaker struct {
	key    []byte
	expiry time.Duration
}

func NewJWTMaker(cfg *config.Config) *JWTMaker {
	return &JWTMaker{
		key:    []byte(cfg.JWT.Secret),
		expiry: cfg.JWT.Expiry,
	}
}

func (m *JWTMaker) CreateToken(userID uuid.UUID, email string, role string) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses and verifies a token. The returned claims are
// trusted for the remainder of the request without a store lookup.
func (m *JWTMaker) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
