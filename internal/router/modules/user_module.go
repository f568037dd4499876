package modules

import (
	"github.com/gin-gonic/gin"

	handlers "newsroom-api/internal/interface/http"
	"newsroom-api/internal/interface/middleware"
	"newsroom-api/pkg/helpers"
)

// UserModule wires auth routes.
// Public: POST /api/signup, POST /api/login
// Protected: GET /api/user
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.SignUp)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	auth.GET("/user", m.Handler.WhoAmI)
}
