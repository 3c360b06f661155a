package delivery

import (
	"net/http"
	"time"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	authdto "github.com/Real-Streeter/liberty-command/internal/auth/dto"
	"github.com/Real-Streeter/liberty-command/internal/auth/usecase"
	"github.com/Real-Streeter/liberty-command/internal/httperr"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"github.com/gin-gonic/gin"
)

var log = logger.Component("AuthHandler")

// CookieSettings controls the attributes of the session cookie
type CookieSettings struct {
	Secure bool
}

func (s CookieSettings) set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authdomain.CookieName, token, maxAge, "/", "", s.Secure, true)
}

func (s CookieSettings) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authdomain.CookieName, "", -1, "/", "", s.Secure, true)
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookies     CookieSettings
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookies CookieSettings) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, cookies: cookies}
}

// Register mounts the auth routes. requireAuth guards /me.
func (h *AuthHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", requireAuth, h.Me)
}

// Login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookies.set(c, result.Token, result.ExpiresAt)
	c.JSON(http.StatusOK, authdto.NewMemberResponse(result.Member))
}

// Logout
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(authdomain.CookieName); err == nil && token != "" {
		if err := h.authUsecase.Logout(c.Request.Context(), token); err != nil {
			log.WithError(err).Warn("failed to delete session on logout")
		}
	}
	h.cookies.clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the logged in member
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	member := CurrentMember(c)
	if member == nil {
		httperr.Respond(c, authdomain.ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, authdto.NewMemberResponse(member))
}
