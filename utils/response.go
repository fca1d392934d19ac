package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes a JSON body of the form {"message": ...} with the given
// status. Every error in the API uses this shape.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

// InternalError logs the data-access failure and answers with the opaque
// 500 body; internal detail never reaches the client.
func InternalError(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	Message(ctx, http.StatusInternalServerError, "Internal server error")
}
