package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-signup/internal/domain/cryptography"
	"github.com/oksasatya/go-auth-signup/internal/domain/repository"
	"github.com/oksasatya/go-auth-signup/pkg/helpers"
	"github.com/oksasatya/go-auth-signup/pkg/response"
)

const (
	CtxUserIDKey      = "userID"
	CtxAccessTokenKey = "accessToken"
)

// Auth validates the access token from the Authorization header or the
// access_token cookie and requires it to be the one persisted for the user.
// It sets userID and accessToken in the Gin context on success.
func Auth(tokens cryptography.Decrypter, users repository.LoadUserByIDRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			unauthorized(c, "missing access token")
			return
		}
		uid, err := tokens.Decrypt(token)
		if err != nil {
			unauthorized(c, "invalid access token")
			return
		}

		u, err := users.LoadByID(c.Request.Context(), uid)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
			c.Abort()
			return
		}
		// a later login or a logout replaces the persisted token
		if u == nil || u.AccessToken == "" || u.AccessToken != token {
			unauthorized(c, "session expired")
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxAccessTokenKey, token)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if scheme, tok, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
	}
	if tok, err := c.Cookie(helpers.AccessTokenCookie); err == nil {
		return tok
	}
	return ""
}

func unauthorized(c *gin.Context, msg string) {
	response.Error[any](c, http.StatusUnauthorized, msg, response.ErrorBody{Code: "UNAUTHORIZED"})
	c.Abort()
}
