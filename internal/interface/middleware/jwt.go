package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/pkg/helpers"
	"github.com/aivio/aivio-api/pkg/response"
)

const CtxUserIDKey = "userID"

// JWTAuth reads the Authorization bearer header, validates signature and
// expiry, and injects the subject user id into the context. There is no
// session store behind this; an unexpired signed token is the whole proof.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortDetail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		userID, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortDetail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuth.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(CtxUserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// UserIDString is used by rate-limit key functions.
func UserIDString(c *gin.Context) string {
	if id := UserID(c); id != 0 {
		return strconv.FormatInt(id, 10)
	}
	return ""
}
