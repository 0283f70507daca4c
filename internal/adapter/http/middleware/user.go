package middleware

import (
	"net/http"
	"strings"

	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the authenticated user id set by the identity provider in
// front of the service.
const HeaderUserID = "X-User-ID"

const userIDKey = "user_id"

var errMissingUser = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)

// RequireUser rejects requests without a user id and stores it in the context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if uid == "" {
			c.AbortWithStatusJSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the id stored by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
