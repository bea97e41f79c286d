package handler

import (
	"errors"
	"net/http"
	"time"

	"air-relatorios/internal/apierrors"
	authhandler "air-relatorios/internal/auth/handler"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/share/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ShareProcessor
	logger    *observability.Logger
}

func New(processor processor.ShareProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type IssueShareRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=200"`
	AllowedPages []string   `json:"allowed_pages" binding:"omitempty,max=8,dive,required"`
	ExpiresAt    *time.Time `json:"expires_at"`
	MaxViews     *int64     `json:"max_views" binding:"omitempty,min=1"`
}

func (h *Handler) HandleIssueShare(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	userID, ok := authhandler.UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}
	var req IssueShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	issued, err := h.processor.Issue(ctx, campaignID, userID, processor.IssueParams{
		Title:        req.Title,
		AllowedPages: req.AllowedPages,
		ExpiresAt:    req.ExpiresAt,
		MaxViews:     req.MaxViews,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issued)
}

func (h *Handler) HandleListShares(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	list, err := h.processor.List(c.Request.Context(), campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleDeleteShare(c *gin.Context) {
	shareID, err := uuid.Parse(c.Param("share_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid share ID format"))
		return
	}
	if err := h.processor.Delete(c.Request.Context(), shareID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandlePublicInfo tells the viewer which pages the link opens.
func (h *Handler) HandlePublicInfo(c *gin.Context) {
	info, err := h.processor.Describe(c.Request.Context(), c.Query("share"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// HandlePublicReport renders ?page= under the ?share= token, or every
// permitted page when page is omitted.
func (h *Handler) HandlePublicReport(c *gin.Context) {
	ctx := c.Request.Context()
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	token := c.Query("share")
	if page := c.Query("page"); page != "" {
		payload, err := h.processor.RenderPage(ctx, token, page, opts)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
		return
	}

	pages, err := h.processor.RenderAll(ctx, token, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidShare):
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidShare, "This link is invalid or has expired"))
	case errors.Is(err, processor.ErrShareViewLimit):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeShareViewLimit, "This link has reached its view limit"))
	case errors.Is(err, report.ErrPageNotPermitted):
		apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodePageNotPermitted, "This page is not included in the shared report"))
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Campaign not found"))
	case errors.Is(err, processor.ErrShareNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Share link not found"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
