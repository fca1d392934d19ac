package utils

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/vibely/vibely/config"
)

// The cookie carries nothing but an opaque token; the user id lives in the
// server-side session store and is resolved per request.

const (
	sessionCookieName = "sid"
	sessionTokenKey   = "token"
)

var (
	cookieStore     *sessions.CookieStore
	cookieStoreOnce sync.Once
)

func getCookieStore() *sessions.CookieStore {
	cookieStoreOnce.Do(func() {
		cfg := config.Get()
		cookieStore = sessions.NewCookieStore([]byte(cfg.SessionSecret))
		cookieStore.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   cfg.SessionTTLHrs * 3600,
			HttpOnly: true,
			Secure:   false,
		}
	})
	return cookieStore
}

// SessionTTL returns the configured session lifetime.
func SessionTTL() time.Duration {
	return time.Duration(config.Get().SessionTTLHrs) * time.Hour
}

// CurrentSessionToken extracts the opaque token from the request cookie.
func CurrentSessionToken(ctx *gin.Context) string {
	sess, err := getCookieStore().Get(ctx.Request, sessionCookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenKey].(string)
	return token
}

// IssueSession creates a session record for the user and sets the cookie.
func IssueSession(ctx *gin.Context, userID uint) error {
	token := NewSessionToken()
	SaveSession(token, userID, SessionTTL())

	sess, _ := getCookieStore().Get(ctx.Request, sessionCookieName)
	sess.Values[sessionTokenKey] = token
	return sess.Save(ctx.Request, ctx.Writer)
}

// ClearSession destroys the server-side record and expires the cookie.
// Clearing when no session exists is a no-op.
func ClearSession(ctx *gin.Context) {
	token := CurrentSessionToken(ctx)
	DestroySession(token)

	sess, err := getCookieStore().Get(ctx.Request, sessionCookieName)
	if err != nil {
		return
	}
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	_ = sess.Save(ctx.Request, ctx.Writer)
}
