package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc auth.Service
	recSvc  recommender.Service
	images  wardrobe.ImageStore
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, recSvc recommender.Service, images wardrobe.ImageStore, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc: authSvc,
		recSvc:  recSvc,
		images:  images,
		logger:  logger.With("component", "http.handler"),
	}
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "register_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "user_exists"):
			status = http.StatusConflict
			code = "user_exists"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Login verifies credentials and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "login_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "invalid_credentials"):
			status = http.StatusUnauthorized
			code = "invalid_credentials"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePreferences changes the stored profile for the authenticated user.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	var prefs auth.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	if err := h.authSvc.SetPreferences(c.Request.Context(), claims.Username, prefs); err != nil {
		status := http.StatusInternalServerError
		code := "preferences_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "user_not_found"):
			status = http.StatusNotFound
			code = "user_not_found"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": claims.Username, "preferences": prefs})
}

type recommendRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Recommend runs the outfit engine against the caller's stored profile.
func (h *Handler) Recommend(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing auth context", nil))
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	prefs, err := h.authSvc.Preferences(c.Request.Context(), claims.Username)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "recommend_failed", errMessage(err), err))
		return
	}

	result, err := h.recSvc.Recommend(c.Request.Context(), recommender.Request{
		User:   claims.Username,
		Prompt: req.Prompt,
		Profile: recommender.Profile{
			AgeGroup: prefs.AgeGroup,
			Gender:   prefs.Gender,
		},
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "recommend_failed"
		if apperrors.IsCode(err, "catalog_error") {
			code = "catalog_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Trending returns the most requested occasions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.recSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "trending_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"occasions": items})
}

// ListWardrobe returns the full clothing catalog.
func (h *Handler) ListWardrobe(c *gin.Context) {
	items, err := h.recSvc.Wardrobe(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "catalog_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// WardrobeImage streams an item image from the image store.
func (h *Handler) WardrobeImage(c *gin.Context) {
	key := c.Param("image")
	rc, err := h.images.Get(c.Request.Context(), key)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "image_not_found", "image not found", err))
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warn("image stream interrupted", "image", key, "error", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
