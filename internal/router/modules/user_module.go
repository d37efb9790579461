package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-signup/internal/container"
	"github.com/oksasatya/go-auth-signup/internal/domain/cryptography"
	"github.com/oksasatya/go-auth-signup/internal/domain/repository"
	handlers "github.com/oksasatya/go-auth-signup/internal/interface/http"
	"github.com/oksasatya/go-auth-signup/internal/interface/middleware"
)

// UserModule wires the authenticated user routes.
// Protected: GET /api/profile, POST /api/logout, GET /api/users/search
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  cryptography.Decrypter
	Users   repository.LoadUserByIDRepository
}

func NewUserModule(h *handlers.UserHandler, tokens cryptography.Decrypter, users repository.LoadUserByIDRepository) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.Users))
	// Apply a softer per-IP limiter to all protected routes
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/users/search", m.Handler.Search)
	}
}
