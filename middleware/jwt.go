package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs a token carrying the account id. The frontend passes
// it back in the socket.io handshake auth map, which is how a socket
// connection gets its per-connection identity.
func IssueToken(accountID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// DecodeToken validates a signed token and returns the account id.
func DecodeToken(tokenString string) (string, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	accountID, ok := claims["sub"].(string)
	if !ok || accountID == "" {
		return "", errors.New("token has no subject")
	}
	return accountID, nil
}

// JWTDecoder reads the account id from a REST request's Authorization
// header.
func JWTDecoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	return DecodeToken(header)
}

// SocketJWTDecoder reads the account id from the socket.io handshake
// auth map.
func SocketJWTDecoder(authData map[string]interface{}) (string, error) {
	token, ok := authData["authorization"].(string)
	if !ok || token == "" {
		return "", errors.New("missing authorization token")
	}
	return DecodeToken(token)
}
