package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/exports/processor"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ExportsProcessor
	logger    *observability.Logger
}

func New(processor processor.ExportsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleExport streams /campaigns/:campaign_id/exports/:kind as an
// attachment. The report date filter applies; ?pages=a,b narrows the PDF.
func (h *Handler) HandleExport(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	kind, err := processor.ParseKind(c.Param("kind"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Unknown export type"))
		return
	}
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var pages []string
	if raw := c.Query("pages"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				pages = append(pages, p)
			}
		}
	}

	file, err := h.processor.Export(ctx, campaignID, kind, opts, pages)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrUnknownKind):
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Unknown export type"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
