package modules

import (
	"github.com/gin-gonic/gin"

	handlers "newsroom-api/internal/interface/http"
	"newsroom-api/internal/interface/middleware"
	"newsroom-api/pkg/helpers"
)

// ArticleModule wires article CRUD routes.
// Public: POST/GET /api/news, GET/PUT/DELETE /api/news/:id
// Protected: POST /api/news/upload
type ArticleModule struct {
	Handler *handlers.ArticleHandler
	JWT     *helpers.JWTManager
}

func NewArticleModule(h *handlers.ArticleHandler, jwt *helpers.JWTManager) *ArticleModule {
	return &ArticleModule{Handler: h, JWT: jwt}
}

func (m *ArticleModule) Register(rg *gin.RouterGroup) {
	rg.POST("/news", m.Handler.Create)
	rg.GET("/news", m.Handler.List)

	// gin matches the static /news/upload segment before /news/:id
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	auth.POST("/news/upload", m.Handler.Upload)

	rg.GET("/news/:id", m.Handler.Get)
	rg.PUT("/news/:id", m.Handler.Update)
	rg.DELETE("/news/:id", m.Handler.Delete)
}
