package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bairroconnect/api/internal/helpers"
)

const (
	// ContextPersonID is the gin context key for the authenticated login id.
	ContextPersonID = "idPessoa"
	// ContextAccountType is the gin context key for the account type claim.
	ContextAccountType = "tipoConta"
)

// JWTAuthMiddleware validates a bearer token and stores its claims in the
// context for downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing authorization header.")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid authorization header.")
			c.Abort()
			return
		}

		secret := os.Getenv("JWT_SECRET")
		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}

		idPessoa, ok := claims[ContextPersonID].(float64)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}

		c.Set(ContextPersonID, uint(idPessoa))
		if tipoConta, ok := claims[ContextAccountType].(string); ok {
			c.Set(ContextAccountType, tipoConta)
		}
		c.Next()
	}
}
