package delivery

import (
	"errors"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	"github.com/Real-Streeter/liberty-command/internal/auth/usecase"
	"github.com/Real-Streeter/liberty-command/internal/httperr"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// RequireAuth resolves the session cookie to a member and stores it under
// "user". Invalid or expired sessions also clear the cookie.
func RequireAuth(authUsecase usecase.AuthUsecase, cookies CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authdomain.CookieName)
		if err != nil || token == "" {
			httperr.Respond(c, authdomain.ErrNotAuthenticated)
			return
		}

		member, err := authUsecase.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperr.ErrUnauthorized) {
				cookies.clear(c)
			}
			httperr.Respond(c, err)
			return
		}

		c.Set(userKey, member)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		member := CurrentMember(c)
		if member == nil || !member.IsAdmin() {
			httperr.Respond(c, authdomain.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

// CurrentMember returns the member set by RequireAuth, or nil
func CurrentMember(c *gin.Context) *teamdomain.Member {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	member, _ := v.(*teamdomain.Member)
	return member
}
