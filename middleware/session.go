package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibely/vibely/utils"
)

// ContextUserIDKey is the key used to store the session's user ID in the
// gin context.
const ContextUserIDKey = "user_id"

// SessionRequired ensures the request carries a session cookie whose token
// resolves to a logged-in user. It carries no further authorization: any
// authenticated user may act on any resource behind it.
func SessionRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := utils.CurrentSessionToken(ctx)
		userID, ok := utils.LookupSession(token)
		if !ok {
			utils.Message(ctx, http.StatusUnauthorized, "Not logged in")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDKey, userID)
		ctx.Next()
	}
}

// SessionUserID returns the authenticated user id placed by SessionRequired.
func SessionUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
