package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-signup/internal/container"
	handlers "github.com/oksasatya/go-auth-signup/internal/interface/http"
	"github.com/oksasatya/go-auth-signup/internal/interface/middleware"
)

// AuthModule registers the public account endpoints:
// POST /api/signup, POST /api/login
type AuthModule struct {
	Handler     *handlers.AuthHandler
	SignupLimit int
	LoginLimit  int
}

func NewAuthModule(h *handlers.AuthHandler, signupLimit, loginLimit int) *AuthModule {
	return &AuthModule{Handler: h, SignupLimit: signupLimit, LoginLimit: loginLimit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), m.SignupLimit, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), m.LoginLimit, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.SignUp)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
