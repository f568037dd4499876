package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"newsroom-api/internal/application"
	"newsroom-api/internal/domain/repository"
	"newsroom-api/pkg/helpers"
	"newsroom-api/pkg/response"
	"newsroom-api/pkg/validation"
)

type ArticleHandler struct {
	Svc       *application.ArticleService
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewArticleHandler(svc *application.ArticleService, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *ArticleHandler {
	return &ArticleHandler{Svc: svc, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

type createArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=draft published"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

// updateArticleRequest requires all five fields; the update is a full
// overwrite, so partial payloads are rejected instead of silently blanking
// the omitted fields.
type updateArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=draft published"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

// Create handles POST /api/news
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), repository.ArticleFields{
		Title:       req.Title,
		Category:    req.Category,
		Status:      req.Status,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error adding news", nil)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List handles GET /api/news
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching news", nil)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get handles GET /api/news/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "News not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error fetching news by ID", nil)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Update handles PUT /api/news/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), repository.ArticleFields{
		Title:       req.Title,
		Category:    req.Category,
		Status:      req.Status,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "News not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error updating news", nil)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /api/news/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "News not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error deleting news", nil)
		return
	}
	response.Message(c, http.StatusOK, "News deleted successfully")
}

// Upload handles POST /api/news/upload (authenticated). It stores the
// multipart "image" part in GCS and returns the public URL for use as an
// article imageUrl.
func (h *ArticleHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	if h.GCS == nil || h.GCSBucket == "" {
		response.Error(c, http.StatusInternalServerError, "storage not configured", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error uploading image", nil)
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectPath := filepath.ToSlash(filepath.Join("news", uuid.NewString()+ext))
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, objectPath, contentType, f)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("object", objectPath).Error("gcs upload failed")
		}
		response.Error(c, http.StatusInternalServerError, "Error uploading image", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
