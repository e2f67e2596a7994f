package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token.
type Claims struct {
	UserID int64  `json:"user_id,string"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated identity extracted from a valid token.
type Principal struct {
	UserID int64
	Email  string
	Role   string
}

// Validator validates a bearer credential and returns the principal it
// carries. Implemented by Manager; test doubles implement it too.
type Validator interface {
	Validate(token string) (*Principal, error)
}

// Manager issues and validates HS256 access tokens.
type Manager struct {
	secret string
	expiry time.Duration
}

func NewManager(secret string, expiryMinutes int) *Manager {
	return &Manager{
		secret: secret,
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// GenerateAccessToken signs a token carrying the user's identity and role.
func (m *Manager) GenerateAccessToken(userID int64, email, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate implements Validator.
func (m *Manager) Validate(tokenString string) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
