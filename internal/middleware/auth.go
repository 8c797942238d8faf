package middleware

import (
	"net/http"
	"strings"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and resolves
// the caller's permission profile once, storing it in the request context.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(principalKey, authz.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireAdmin rejects callers without the administrator role. The API
// contract reports insufficient role as 401, not 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetPrincipal(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("No autorizado"))
			return
		}
		c.Next()
	}
}

// GetPrincipal retrieves the typed permission profile from the Gin context.
func GetPrincipal(c *gin.Context) authz.Principal {
	p, _ := c.MustGet(principalKey).(authz.Principal)
	return p
}
