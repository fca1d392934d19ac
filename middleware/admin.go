package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibely/vibely/utils"
)

// RoleHeader names the request header carrying the caller's role. The
// value is a plain marker, not a verified credential.
const RoleHeader = "x-role"

// AdminRequired passes only requests whose role header equals "admin".
// This is a coarse single-bit check with no per-admin identity binding.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader(RoleHeader) != "admin" {
			utils.Message(ctx, http.StatusForbidden, "Admin access only")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
