package handler

import (
	"errors"
	"net/http"
	"strconv"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/comments"
	"air-relatorios/internal/comments/processor"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps a comments CSV upload.
const maxUploadBytes = 20 << 20

type Handler struct {
	processor processor.CommentsProcessor
	logger    *observability.Logger
}

func New(processor processor.CommentsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type uploadResponse struct {
	processor.Result
	ClassificationError *apierrors.ErrorResponse `json:"classification_error,omitempty"`
}

// HandleUploadComments ingests a multipart "file" CSV for the post in the
// "post_url" form field. Comments are saved even when the classifier fails;
// the failure is reported in classification_error.
func (h *Handler) HandleUploadComments(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	file, err := c.FormFile("file")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "A CSV file is required in the file field"))
		return
	}

	params := processor.UploadParams{CampaignID: campaignID, PostURL: c.PostForm("post_url")}
	if raw := c.PostForm("influencer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid influencer ID format"))
			return
		}
		params.InfluencerID = &id
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded file", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Could not read the uploaded file"))
		return
	}
	defer f.Close()

	res, err := h.processor.Upload(ctx, params, f)
	if err != nil && !errors.Is(err, processor.ErrClassificationFailed) {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, uploadResponse{Result: res, ClassificationError: classificationError(err)})
}

func (h *Handler) HandleReclassify(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}

	res, err := h.processor.Reclassify(ctx, campaignID, c.Query("post_url"))
	if err != nil && !errors.Is(err, processor.ErrClassificationFailed) {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploadResponse{Result: res, ClassificationError: classificationError(err)})
}

func (h *Handler) HandleListComments(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	filter := store.CommentFilter{PostURL: c.Query("post_url"), Category: c.Query("category")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be a positive number"))
			return
		}
		filter.Limit = limit
	}

	list, err := h.processor.List(ctx, campaignID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleCountComments(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	counts, err := h.processor.Counts(c.Request.Context(), campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) HandleDeletePostComments(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}
	n, err := h.processor.DeleteByPost(c.Request.Context(), campaignID, c.Query("post_url"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *Handler) HandleDeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid comment ID format"))
		return
	}
	if err := h.processor.Delete(c.Request.Context(), commentID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func classificationError(err error) *apierrors.ErrorResponse {
	if err == nil {
		return nil
	}
	apiErr := apierrors.MapError(err)
	return &apierrors.ErrorResponse{Error: apiErr.Message, Code: apiErr.Code}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Campaign not found"))
	case errors.Is(err, comments.ErrBadCSV):
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeBadCSV, "The CSV must have a Comment column"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
