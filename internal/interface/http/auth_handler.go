package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aivio/aivio-api/internal/application"
	"github.com/aivio/aivio-api/pkg/response"
	"github.com/aivio/aivio-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// tokenRequest follows the OAuth2 password flow shape: form-encoded
// username/password, where username carries the email.
type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	})
}

// Token POST /auth/token
// Unknown email and wrong password produce byte-identical responses.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Detail(c, http.StatusBadRequest, "Incorrect username or password")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
