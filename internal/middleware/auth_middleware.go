package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"miniblog/internal/repository"
	"miniblog/pkg/config"
	"miniblog/pkg/utils"

	"github.com/gin-gonic/gin"
)

const authCookie = "auth_token"

// tokenFromRequest looks for a bearer token in the Authorization header
// first, then in the auth cookie set at login.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(authCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware guards auth-required paths. An anonymous or invalid
// request is redirected to the login path with the original URL in the
// "next" parameter.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			redirectToLogin(c)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		userRepo := repository.NewUserRepository()
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user == nil {
			redirectToLogin(c)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("user", user)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves the requester's identity when a valid
// token is present but never blocks. Anonymous listing pages use it for
// display-only state such as the profile "following" flag.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		userRepo := repository.NewUserRepository()
		user, err := userRepo.FindByID(claims.UserID)
		if err == nil && user != nil {
			c.Set("userID", claims.UserID)
			c.Set("user", user)
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	loginPath := config.GlobalConfig.Server.LoginPath
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, loginPath+"?next="+next)
	c.Abort()
}
