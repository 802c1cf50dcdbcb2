package storefrontserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// DefaultSessionCookie names the cookie that carries the shopper session id.
	DefaultSessionCookie = "uch_session"
	// SessionHeader lets non-browser clients pick their session explicitly.
	SessionHeader = "X-Session-ID"

	sessionContextKey = "storefront.session_id"
)

// SessionConfig controls how shopper sessions are issued.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

func (c SessionConfig) cookieName() string {
	if strings.TrimSpace(c.CookieName) == "" {
		return DefaultSessionCookie
	}
	return c.CookieName
}

// SessionMiddleware resolves the session id from the header or cookie and
// issues a fresh one when neither carries a valid UUID.
func SessionMiddleware(cfg SessionConfig) gin.HandlerFunc {
	name := cfg.cookieName()
	maxAge := int(cfg.TTL / time.Second)
	return func(c *gin.Context) {
		id := parseSessionID(c.GetHeader(SessionHeader))
		if id == "" {
			if raw, err := c.Cookie(name); err == nil {
				id = parseSessionID(raw)
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(name, id, maxAge, "/", "", cfg.Secure, true)
		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, id)
	}
}

// sessionID returns the id resolved by SessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func parseSessionID(raw string) string {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return id.String()
}
