package handler

import (
	"errors"
	"net/http"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"
	"air-relatorios/internal/report/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReportProcessor
	logger    *observability.Logger
}

func New(processor processor.ReportProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetReportPage renders one page of a campaign report.
func (h *Handler) HandleGetReportPage(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	page := c.Param("page")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "page", Value: page},
	)

	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	payload, err := h.processor.GetPage(ctx, campaignID, page, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// HandleGetReport renders every page of a campaign report.
func (h *Handler) HandleGetReport(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	pages, err := h.processor.GetAll(ctx, campaignID, opts, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Campaign not found"))
	case errors.Is(err, report.ErrPageNotPermitted):
		apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodePageNotPermitted, "This page is not available for this link"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
