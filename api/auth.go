package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const userAccountIDKey = "userAccountID"

// parseJwt verifies an HS256 token signed with decodeToken. Tokens must
// carry an expiry and a subject.
func parseJwt(jwtStr string, decodeToken string) (*jwt.StandardClaims, error) {
	token, err := jwt.ParseWithClaims(jwtStr, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to parse claims")
	}
	if claims.ExpiresAt == 0 {
		return nil, fmt.Errorf("jwt has no expiry")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt has no subject")
	}

	return claims, nil
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	jwtStr := strings.TrimPrefix(header, "Bearer ")
	if header == "" || jwtStr == header {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
		return
	}

	claims, err := parseJwt(jwtStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		returnErrorJsonCode(fmt.Errorf("jwt subject is not a user id: %w", err), c, http.StatusUnauthorized)
		return
	}

	c.Set(userAccountIDKey, claims.Subject)
	c.Next()
}

func userAccountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get(userAccountIDKey)
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	return uuid.Parse(userAccountIDStr)
}
