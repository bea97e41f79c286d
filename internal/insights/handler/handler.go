package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/insights/processor"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type Handler struct {
	processor processor.InsightsProcessor
	upgrader  websocket.Upgrader
	logger    *observability.Logger
}

// New builds the handler. allowedOrigins restricts the progress websocket;
// empty accepts any origin.
func New(processor processor.InsightsProcessor, allowedOrigins []string, logger *observability.Logger) Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return Handler{
		processor: processor,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return len(origins) == 0 || origins[r.Header.Get("Origin")]
			},
		},
		logger: logger,
	}
}

type CreateInsightRequest struct {
	Page  string `json:"page" binding:"required"`
	Type  string `json:"type"`
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required"`
}

type UpdateInsightRequest struct {
	Type  *string `json:"type"`
	Title *string `json:"title" binding:"omitempty,max=200"`
	Body  *string `json:"body"`
}

// progressMessage is one websocket frame of a bulk generation run.
type progressMessage struct {
	Event    string                   `json:"event"`
	Outcome  *processor.PageOutcome   `json:"outcome,omitempty"`
	Outcomes []processor.PageOutcome  `json:"outcomes,omitempty"`
	Error    *apierrors.ErrorResponse `json:"error,omitempty"`
}

func (h *Handler) HandleListInsights(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	list, err := h.processor.List(c.Request.Context(), campaignID, c.Query("page"), c.Query("include_excluded") == "true")
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleGeneratePage(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	created, err := h.processor.GeneratePage(ctx, campaignID, c.Param("page"), opts)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HandleGenerateAll runs every insight page and answers with the per-page
// outcomes once the run ends.
func (h *Handler) HandleGenerateAll(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	outcomes, err := h.processor.GenerateAll(ctx, campaignID, opts, nil)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": publicOutcomes(outcomes)})
}

// HandleGenerateAllStream is the websocket flavour of HandleGenerateAll: one
// "page" frame per finished page, then a "done" frame. Closing the socket
// cancels the run.
func (h *Handler) HandleGenerateAllStream(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WarnWithError(c.Request.Context(), "failed to upgrade insights stream", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	))
	defer cancel()

	// The reader only watches for the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(msg progressMessage) {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.WarnWithError(ctx, "failed to write insights progress", err)
			cancel()
		}
	}

	outcomes, err := h.processor.GenerateAll(ctx, campaignID, opts, func(o processor.PageOutcome) {
		o = publicOutcome(o)
		send(progressMessage{Event: "page", Outcome: &o})
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			apiErr := apierrors.MapError(err)
			send(progressMessage{Event: "error", Error: &apierrors.ErrorResponse{Error: apiErr.Message, Code: apiErr.Code}})
		}
		return
	}
	send(progressMessage{Event: "done", Outcomes: publicOutcomes(outcomes)})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

func publicOutcome(o processor.PageOutcome) processor.PageOutcome {
	if o.Err != nil {
		o.Error = apierrors.MapError(o.Err).Message
	}
	return o
}

func publicOutcomes(list []processor.PageOutcome) []processor.PageOutcome {
	out := make([]processor.PageOutcome, 0, len(list))
	for _, o := range list {
		out = append(out, publicOutcome(o))
	}
	return out
}

func (h *Handler) HandleRegenerate(c *gin.Context) {
	insightID, err := uuid.Parse(c.Param("insight_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid insight ID format"))
		return
	}
	opts, err := report.ParseOptions(c.Request.URL.Query())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	view, err := h.processor.Regenerate(c.Request.Context(), insightID, opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) HandleCreateInsight(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	var req CreateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	view, err := h.processor.Create(c.Request.Context(), campaignID, processor.CreateParams{
		Page:  req.Page,
		Type:  req.Type,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) HandleUpdateInsight(c *gin.Context) {
	insightID, err := uuid.Parse(c.Param("insight_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid insight ID format"))
		return
	}
	var req UpdateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	view, err := h.processor.Edit(c.Request.Context(), insightID, processor.EditParams{
		Type:  req.Type,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleDeleteInsight soft deletes unless ?hard=true.
func (h *Handler) HandleDeleteInsight(c *gin.Context) {
	insightID, err := uuid.Parse(c.Param("insight_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid insight ID format"))
		return
	}
	if c.Query("hard") == "true" {
		err = h.processor.HardDelete(c.Request.Context(), insightID)
	} else {
		err = h.processor.SoftDelete(c.Request.Context(), insightID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleRestoreInsight(c *gin.Context) {
	insightID, err := uuid.Parse(c.Param("insight_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid insight ID format"))
		return
	}
	if err := h.processor.Restore(c.Request.Context(), insightID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInsightNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Insight not found"))
	case errors.Is(err, processor.ErrEmptyAnswer):
		apierrors.RespondWithError(c, apierrors.BadGateway("The AI returned an empty insight. Please try again.", err))
	default:
		apierrors.RespondWithError(c, err)
	}
}
