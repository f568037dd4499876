package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsroom-api/config"
	"newsroom-api/internal/application"
	"newsroom-api/internal/interface/middleware"
	"newsroom-api/pkg/helpers"
	"newsroom-api/pkg/mailer"
	"newsroom-api/pkg/mailer/templates"
	"newsroom-api/pkg/response"
	"newsroom-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cfg: cfg, Pub: pub}
}

type signUpRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles POST /api/signup
func (h *UserHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.SignUp(c.Request.Context(), application.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error signing up", nil)
		return
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"user_id":    u.ID.Hex(),
			"request_id": c.GetString("request_id"),
			"ip":         c.GetString("real_ip"),
		}).Info("user signed up")
	}

	// Welcome email is best effort; signup never fails on publish errors.
	if h.Pub != nil && h.Cfg != nil && h.Cfg.MailSendEnabled {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: templates.Welcome,
			Data: map[string]any{
				"FirstName": u.FirstName,
				"Email":     u.Email,
				"AppName":   h.Cfg.AppName,
			},
		}
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("enqueue welcome email failed")
		}
	}

	response.Message(c, http.StatusCreated, "User signed up successfully")
}

// Login handles POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Incorrect password", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Error logging in", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// WhoAmI handles GET /api/user. The JWTAuth middleware has already
// verified the bearer token and stored the user id in the context.
func (h *UserHandler) WhoAmI(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	role, err := h.Svc.Role(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}
