package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibely/vibely/middleware"
	"github.com/vibely/vibely/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("REDIS_PORT", "1")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func guardedRouter(guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", guard, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAdminRequired(t *testing.T) {
	r := guardedRouter(middleware.AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(middleware.RoleHeader, "user")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(middleware.RoleHeader, "admin")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionRequiredRejectsAnonymous(t *testing.T) {
	r := guardedRouter(middleware.SessionRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Not logged in"}`, w.Body.String())
}

func TestSessionRequiredAcceptsIssuedSession(t *testing.T) {
	// Issue a session through a login-like handler, then replay its cookie
	// against the guard.
	issuer := gin.New()
	issuer.GET("/issue", func(ctx *gin.Context) {
		require.NoError(t, utils.IssueSession(ctx, 7))
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	issuer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/issue", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	r := guardedRouter(middleware.SessionRequired())
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionUserIDVisibleToHandlers(t *testing.T) {
	issuer := gin.New()
	issuer.GET("/issue", func(ctx *gin.Context) {
		require.NoError(t, utils.IssueSession(ctx, 42))
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	issuer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/issue", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	r := gin.New()
	r.GET("/me", middleware.SessionRequired(), func(ctx *gin.Context) {
		userID, ok := middleware.SessionUserID(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := guardedRouter(middleware.RateLimitMiddleware())

	// The burst is half the per-minute limit; exhaust it and expect 429.
	var limited bool
	for i := 0; i < 200; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.True(t, limited, "expected the limiter to trip within 200 requests")
}
