package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-auth-signup/internal/application"
	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	"github.com/oksasatya/go-auth-signup/internal/interface/middleware"
	"github.com/oksasatya/go-auth-signup/pkg/helpers"
	"github.com/oksasatya/go-auth-signup/pkg/response"
	"github.com/oksasatya/go-auth-signup/pkg/validation"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	Logout(ctx context.Context, userID string) error
	SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error)
}

type UserHandler struct {
	Svc     UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// userView is the public projection of a user; it never carries the
// password hash or the access token.
type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate.Format(validation.DateLayout),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type searchQuery struct {
	Q    string `form:"q" json:"q" binding:"required"`
	Size int    `form:"size" json:"size" binding:"omitempty,min=1,max=50"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", response.ErrorBody{Code: "NOT_FOUND"})
			return
		}
		helpers.LogError(h.Logger, "load profile failed", err, logrus.Fields{"user_id": uid})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile", nil)
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Logout(c.Request.Context(), uid); err != nil {
		helpers.LogError(h.Logger, "logout failed", err, logrus.Fields{"user_id": uid})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", response.ErrorBody{Code: "INTERNAL"})
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Search GET /api/users/search?q=&size=
func (h *UserHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", response.ErrorBody{Code: "VALIDATION_ERROR", Details: validation.ToDetails(err)})
		return
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		helpers.LogError(h.Logger, "user search failed", err, logrus.Fields{"q": q.Q})
		response.Error[any](c, http.StatusBadGateway, "search unavailable", response.ErrorBody{Code: "SEARCH_FAILED"})
		return
	}
	response.Success(c, http.StatusOK, hits, "users", map[string]any{"count": len(hits)})
}
