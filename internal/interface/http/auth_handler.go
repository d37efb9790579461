package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-signup/config"
	"github.com/oksasatya/go-auth-signup/internal/application"
	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-auth-signup/internal/domain/repository"
	"github.com/oksasatya/go-auth-signup/internal/interface/middleware"
	"github.com/oksasatya/go-auth-signup/pkg/helpers"
	"github.com/oksasatya/go-auth-signup/pkg/mailer"
	tpl "github.com/oksasatya/go-auth-signup/pkg/mailer/templates"
	"github.com/oksasatya/go-auth-signup/pkg/metrics"
	"github.com/oksasatya/go-auth-signup/pkg/response"
	"github.com/oksasatya/go-auth-signup/pkg/validation"
)

type Authenticator interface {
	Authenticate(ctx context.Context, c application.Credentials) (string, error)
}

type AccountAdder interface {
	AddAccount(ctx context.Context, in application.AddAccountInput) (*entity.User, error)
}

type UserIndexer interface {
	IndexUser(ctx context.Context, u *entity.User) error
}

type TokenExpiry interface {
	ExpiresAt() time.Time
}

type AuthHandler struct {
	Auth     Authenticator
	Accounts AccountAdder
	Users    repo.LoadUserByUsernameRepository
	Indexer  UserIndexer
	Tokens   TokenExpiry
	Pub      helpers.JSONPublisher
	Geo      tpl.GeoResolver
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
	Cfg      *config.Config
}

type AuthHandlerDeps struct {
	Auth     Authenticator
	Accounts AccountAdder
	Users    repo.LoadUserByUsernameRepository
	Indexer  UserIndexer
	Tokens   TokenExpiry
	Pub      helpers.JSONPublisher
	Geo      tpl.GeoResolver
	Logger   *logrus.Logger
	Cfg      *config.Config
}

func NewAuthHandler(d AuthHandlerDeps) *AuthHandler {
	return &AuthHandler{
		Auth:     d.Auth,
		Accounts: d.Accounts,
		Users:    d.Users,
		Indexer:  d.Indexer,
		Tokens:   d.Tokens,
		Pub:      d.Pub,
		Geo:      d.Geo,
		Cookies:  helpers.NewCookie(d.Cfg.CookieDomain, d.Cfg.CookieSecure),
		Logger:   d.Logger,
		Cfg:      d.Cfg,
	}
}

type signupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,pwd"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
	BirthDate       string `json:"birth_date" binding:"required,birthdate"`
	Username        string `json:"username" binding:"required,uname"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SignUp POST /api/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordSignup(metrics.OutcomeInvalid)
		response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "VALIDATION_ERROR", Details: validation.ToDetails(err)})
		return
	}
	birth, _ := time.Parse(validation.DateLayout, req.BirthDate)

	ctx := c.Request.Context()
	u, err := h.Accounts.AddAccount(ctx, application.AddAccountInput{
		Name:      req.Name,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		BirthDate: birth,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUsernameTaken):
			metrics.RecordSignup(metrics.OutcomeDuplicate)
			response.Error[any](c, http.StatusConflict, "username already in use", response.ErrorBody{Code: "USERNAME_TAKEN"})
		case errors.Is(err, application.ErrEmailTaken):
			metrics.RecordSignup(metrics.OutcomeDuplicate)
			response.Error[any](c, http.StatusConflict, "email already in use", response.ErrorBody{Code: "EMAIL_TAKEN"})
		case errors.Is(err, repo.ErrDuplicate):
			metrics.RecordSignup(metrics.OutcomeDuplicate)
			response.Error[any](c, http.StatusConflict, "account already exists", response.ErrorBody{Code: "DUPLICATE"})
		default:
			metrics.RecordSignup(metrics.OutcomeError)
			helpers.LogError(h.Logger, "signup failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
			response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
		}
		return
	}
	metrics.RecordSignup(metrics.OutcomeSuccess)

	if h.Indexer != nil {
		if err := h.Indexer.IndexUser(ctx, u); err != nil {
			helpers.LogError(h.Logger, "index user failed", err, logrus.Fields{"user_id": u.ID})
		}
	}
	h.enqueue(c, mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     tpl.NewWelcomeData(h.Cfg, u.Name, u.Username, u.Email),
	})

	response.Success(c, http.StatusCreated, toUserView(u), "account created", nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordLogin(metrics.OutcomeInvalid)
		response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "VALIDATION_ERROR", Details: validation.ToDetails(err)})
		return
	}

	ctx := c.Request.Context()
	token, err := h.Auth.Authenticate(ctx, application.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		metrics.RecordLogin(metrics.OutcomeError)
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
		return
	}
	if token == "" {
		metrics.RecordLogin(metrics.OutcomeRejected)
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", response.ErrorBody{Code: "INVALID_CREDENTIALS"})
		return
	}
	metrics.RecordLogin(metrics.OutcomeSuccess)

	exp := h.Tokens.ExpiresAt()
	h.Cookies.SetAccessToken(c, token, exp)
	h.notifyLogin(c, req.Username)

	response.Success(c, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp}, "login successful", nil)
}

func (h *AuthHandler) notifyLogin(c *gin.Context, username string) {
	if !h.mailEnabled() || h.Users == nil {
		return
	}
	ctx := c.Request.Context()
	u, err := h.Users.LoadByUsername(ctx, username)
	if err != nil || u == nil {
		helpers.LogError(h.Logger, "login notification lookup failed", err, logrus.Fields{"username": username})
		return
	}
	ip := middleware.ClientIP(c)
	h.enqueue(c, mailer.EmailJob{
		To:       u.Email,
		Template: tpl.LoginNotification,
		Data: tpl.NewLoginNotificationData(h.Cfg, u.Name, u.Username, u.Email,
			tpl.WithTime(time.Now()),
			tpl.WithIP(ip),
			tpl.WithUserAgent(c.GetHeader("User-Agent")),
			tpl.WithGeoFromIP(ctx, h.Geo, ip),
		),
	})
}

func (h *AuthHandler) mailEnabled() bool {
	return h.Pub != nil && h.Cfg != nil && h.Cfg.MailSendEnabled
}

// enqueue publishes job when mail sending is enabled. Failures are logged only.
func (h *AuthHandler) enqueue(c *gin.Context, job mailer.EmailJob) {
	if !h.mailEnabled() {
		return
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		helpers.LogError(h.Logger, "enqueue email failed", err, logrus.Fields{"template": job.Template})
	}
}
