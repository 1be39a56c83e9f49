package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/middleware"
	"github.com/Chodoro/psusphere/internal/models"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
	"github.com/Chodoro/psusphere/pkg/response"
)

// AuthService is the authentication surface behind the login endpoints.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.SessionClaims, error)
	Me(ctx context.Context, userID string) (*models.UserInfo, error)
	SessionTTL() time.Duration
}

// AuthHandlerConfig controls the session cookie and post-login navigation.
type AuthHandlerConfig struct {
	CookieName   string
	CookieSecure bool
	LoginPath    string
	HomePath     string
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service AuthService
	config  AuthHandlerConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc AuthService, cfg AuthHandlerConfig) *AuthHandler {
	if cfg.CookieName == "" {
		cfg.CookieName = middleware.DefaultCookieName
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.HomePath == "" {
		cfg.HomePath = "/"
	}
	return &AuthHandler{service: svc, config: cfg}
}

// Login godoc
// @Summary Authenticate administrator
// @Description Issues a session token, also set as an HttpOnly cookie. meta.redirect carries the page to return to.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param next query string false "Path to return to after login"
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setCookie(c, res.Token, int(h.service.SessionTTL().Seconds()))
	response.JSON(c, http.StatusOK, res, nil, map[string]interface{}{
		"redirect": h.nextPath(c.Query("next")),
	})
}

// Logout godoc
// @Summary End the browser session
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	response.JSON(c, http.StatusOK, nil, nil, map[string]interface{}{
		"redirect": h.config.LoginPath,
	})
}

// Me godoc
// @Summary Current administrator
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.Session(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	user, err := h.service.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, value, maxAge, "/", "", h.config.CookieSecure, true)
}

// nextPath accepts only local absolute paths so the login form cannot be
// used as an open redirect.
func (h *AuthHandler) nextPath(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return h.config.HomePath
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return h.config.HomePath
	}
	return next
}
