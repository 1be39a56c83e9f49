package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/models"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
	"github.com/Chodoro/psusphere/pkg/logger"
	"github.com/Chodoro/psusphere/pkg/response"
)

// ContextSessionKey is the gin context key storing session claims.
const ContextSessionKey = "currentSession"

// DefaultCookieName carries the session token for browser clients.
const DefaultCookieName = "psusphere_session"

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.SessionClaims, error)
}

// GateConfig controls where rejected requests are sent.
type GateConfig struct {
	LoginPath  string
	CookieName string
}

// RequireSession admits only requests carrying a valid session token of an
// active account, read from the Authorization bearer header or the session
// cookie. Browser
// navigations are redirected to the login page with the original URI in
// next; other clients get a 401 envelope with the login path in Location.
func RequireSession(auth sessionAuthenticator, cfg GateConfig) gin.HandlerFunc {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return func(c *gin.Context) {
		token := sessionToken(c, cfg.CookieName)
		if token == "" {
			reject(c, cfg.LoginPath, appErrors.ErrUnauthorized)
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			reject(c, cfg.LoginPath, err)
			return
		}

		c.Set(ContextSessionKey, claims)
		c.Set(logger.UserContextKey, claims.Username)
		c.Next()
	}
}

// Session returns the claims stored by RequireSession.
func Session(c *gin.Context) (*models.SessionClaims, bool) {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.SessionClaims)
	return claims, ok
}

func sessionToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, loginPath string, err error) {
	if wantsHTML(c.Request) {
		target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}
	c.Header("Location", loginPath)
	response.Error(c, err)
	c.Abort()
}

func wantsHTML(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
