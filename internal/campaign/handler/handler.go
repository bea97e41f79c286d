package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/campaign/processor"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign.
// Dates accept dd/mm/yyyy, yyyy-mm-dd or ISO timestamps.
type CreateCampaignRequest struct {
	Name                    string                          `json:"name" binding:"required,max=200"`
	ClientID                uuid.UUID                       `json:"client_id" binding:"required"`
	Objective               string                          `json:"objective"`
	StartDate               *string                         `json:"start_date"`
	EndDate                 *string                         `json:"end_date"`
	DataMode                string                          `json:"data_mode" binding:"omitempty,oneof=static dynamic"`
	IsAON                   bool                            `json:"is_aon"`
	MetricFlags             []string                        `json:"metric_flags"`
	ReachEstimate           int64                           `json:"alcance_estimate" binding:"min=0"`
	ImpressionsEstimate     int64                           `json:"impressions_estimate" binding:"min=0"`
	TotalInvestment         float64                         `json:"total_investment" binding:"min=0"`
	Notes                   string                          `json:"notes"`
	CustomColumns           []string                        `json:"custom_columns" binding:"max=2"`
	InsightConfig           map[string]any                  `json:"insight_config"`
	ShowCategoryTab         bool                            `json:"show_category_tab"`
	SpecificClassifications []domain.SpecificClassification `json:"specific_classifications" binding:"max=3"`
	CommentCategories       []domain.CommentCategory        `json:"comment_categories" binding:"max=10"`
}

// UpdateCampaignRequest represents the HTTP request for a partial campaign update
type UpdateCampaignRequest struct {
	Name                    *string                          `json:"name" binding:"omitempty,max=200"`
	ClientID                *uuid.UUID                       `json:"client_id"`
	Objective               *string                          `json:"objective"`
	StartDate               *string                          `json:"start_date"`
	EndDate                 *string                          `json:"end_date"`
	DataMode                *string                          `json:"data_mode" binding:"omitempty,oneof=static dynamic"`
	IsAON                   *bool                            `json:"is_aon"`
	MetricFlags             *[]string                        `json:"metric_flags"`
	ReachEstimate           *int64                           `json:"alcance_estimate" binding:"omitempty,min=0"`
	ImpressionsEstimate     *int64                           `json:"impressions_estimate" binding:"omitempty,min=0"`
	TotalInvestment         *float64                         `json:"total_investment" binding:"omitempty,min=0"`
	Notes                   *string                          `json:"notes"`
	CustomColumns           *[]string                        `json:"custom_columns"`
	InsightConfig           *map[string]any                  `json:"insight_config"`
	ShowCategoryTab         *bool                            `json:"show_category_tab"`
	SpecificClassifications *[]domain.SpecificClassification `json:"specific_classifications"`
	CommentCategories       *[]domain.CommentCategory        `json:"comment_categories"`
}

type CommentCategoriesRequest struct {
	Categories []domain.CommentCategory `json:"categories" binding:"max=10"`
}

type TopContentRequest struct {
	Slot        int       `json:"slot" binding:"required,min=1,max=3"`
	PostID      uuid.UUID `json:"post_id" binding:"required"`
	Description string    `json:"description" binding:"max=500"`
}

type TopContentsRequest struct {
	Items []TopContentRequest `json:"items" binding:"max=3,dive"`
}

// AttachInfluencerRequest represents the HTTP request for attaching an influencer to a campaign
type AttachInfluencerRequest struct {
	InfluencerID   uuid.UUID `json:"influencer_id" binding:"required"`
	Cost           float64   `json:"cost" binding:"min=0"`
	CustomCol1     string    `json:"custom_col_1"`
	CustomCol2     string    `json:"custom_col_2"`
	SpecificValues []string  `json:"specific_values" binding:"max=3"`
	Category       string    `json:"category"`
}

type UpdateInfluencerRequest struct {
	Cost           *float64  `json:"cost" binding:"omitempty,min=0"`
	CustomCol1     *string   `json:"custom_col_1"`
	CustomCol2     *string   `json:"custom_col_2"`
	SpecificValues *[]string `json:"specific_values"`
	Category       *string   `json:"category"`
}

// PostRequest represents the HTTP request for a hand-entered post
type PostRequest struct {
	Format          string             `json:"format" binding:"required"`
	Platform        string             `json:"platform"`
	PublicationDate *string            `json:"publication_date"`
	Permalink       *string            `json:"permalink"`
	Caption         *string            `json:"caption"`
	Thumbnails      []string           `json:"thumbnails"`
	Metrics         domain.PostMetrics `json:"metrics"`
	ScreensCount    int                `json:"screens_count"`
}

type UpdatePostRequest struct {
	Format          *string             `json:"format"`
	Platform        *string             `json:"platform"`
	PublicationDate *string             `json:"publication_date"`
	Permalink       *string             `json:"permalink"`
	Caption         *string             `json:"caption"`
	Thumbnails      *[]string           `json:"thumbnails"`
	Metrics         *domain.PostMetrics `json:"metrics"`
	ScreensCount    *int                `json:"screens_count"`
}

// PostByLinkRequest asks for a post to be found by its permalink.
// BudgetDays overrides the configured lookup budget when positive.
type PostByLinkRequest struct {
	Link       string `json:"link" binding:"required"`
	BudgetDays int    `json:"budget_days" binding:"min=0,max=3650"`
}

func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(c.Request.Context(), processor.CreateCampaignParams{
		Name:                    req.Name,
		ClientID:                req.ClientID,
		Objective:               req.Objective,
		StartDate:               start,
		EndDate:                 end,
		DataMode:                req.DataMode,
		IsAON:                   req.IsAON,
		MetricFlags:             req.MetricFlags,
		ReachEstimate:           req.ReachEstimate,
		ImpressionsEstimate:     req.ImpressionsEstimate,
		TotalInvestment:         req.TotalInvestment,
		Notes:                   req.Notes,
		CustomColumns:           req.CustomColumns,
		InsightConfig:           req.InsightConfig,
		ShowCategoryTab:         req.ShowCategoryTab,
		SpecificClassifications: req.SpecificClassifications,
		CommentCategories:       req.CommentCategories,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *Handler) HandleListCampaigns(c *gin.Context) {
	var clientID *uuid.UUID
	if s := c.Query("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid client ID format"))
			return
		}
		clientID = &id
	}
	campaigns, err := h.processor.ListCampaigns(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *Handler) HandleGetCampaign(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	campaign, err := h.processor.GetCampaign(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(c.Request.Context(), id, processor.UpdateCampaignParams{
		Name:                    req.Name,
		ClientID:                req.ClientID,
		Objective:               req.Objective,
		StartDate:               start,
		EndDate:                 end,
		DataMode:                req.DataMode,
		IsAON:                   req.IsAON,
		MetricFlags:             req.MetricFlags,
		ReachEstimate:           req.ReachEstimate,
		ImpressionsEstimate:     req.ImpressionsEstimate,
		TotalInvestment:         req.TotalInvestment,
		Notes:                   req.Notes,
		CustomColumns:           req.CustomColumns,
		InsightConfig:           req.InsightConfig,
		ShowCategoryTab:         req.ShowCategoryTab,
		SpecificClassifications: req.SpecificClassifications,
		CommentCategories:       req.CommentCategories,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	if err := h.processor.DeleteCampaign(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleSetCommentCategories(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	var req CommentCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	campaign, err := h.processor.SetCommentCategories(c.Request.Context(), id, req.Categories)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleSetTopContents(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	var req TopContentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	picks := make([]processor.TopPick, 0, len(req.Items))
	for _, it := range req.Items {
		picks = append(picks, processor.TopPick{Slot: it.Slot, PostID: it.PostID, Description: it.Description})
	}
	campaign, err := h.processor.SetTopContents(c.Request.Context(), id, picks)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleRefreshCampaign(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	res, err := h.processor.RefreshCampaign(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) HandleAttachInfluencer(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	var req AttachInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	edge, err := h.processor.AttachInfluencer(c.Request.Context(), id, processor.AttachParams{
		InfluencerID:   req.InfluencerID,
		Cost:           req.Cost,
		CustomCol1:     req.CustomCol1,
		CustomCol2:     req.CustomCol2,
		SpecificValues: req.SpecificValues,
		Category:       req.Category,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, edge)
}

func (h *Handler) HandleListInfluencers(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	edges, err := h.processor.ListInfluencers(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, edges)
}

func (h *Handler) HandleUpdateInfluencer(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	edge, ok := edgeID(c)
	if !ok {
		return
	}
	var req UpdateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	updated, err := h.processor.UpdateInfluencer(c.Request.Context(), id, edge, processor.UpdateEdgeParams{
		Cost:           req.Cost,
		CustomCol1:     req.CustomCol1,
		CustomCol2:     req.CustomCol2,
		SpecificValues: req.SpecificValues,
		Category:       req.Category,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) HandleDetachInfluencer(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	edge, ok := edgeID(c)
	if !ok {
		return
	}
	if err := h.processor.DetachInfluencer(c.Request.Context(), id, edge); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleCreatePost(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	edge, ok := edgeID(c)
	if !ok {
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	date, err := parseDate(req.PublicationDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	post, err := h.processor.CreatePost(c.Request.Context(), id, edge, processor.PostParams{
		Format:          req.Format,
		Platform:        req.Platform,
		PublicationDate: date,
		Permalink:       req.Permalink,
		Caption:         req.Caption,
		Thumbnails:      req.Thumbnails,
		Metrics:         req.Metrics,
		ScreensCount:    req.ScreensCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) HandleAddPostByLink(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	edge, ok := edgeID(c)
	if !ok {
		return
	}
	var req PostByLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	post, err := h.processor.AddPostByLink(c.Request.Context(), id, edge, req.Link, req.BudgetDays)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) HandleListPosts(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	var edge *uuid.UUID
	if s := c.Query("edge_id"); s != "" {
		e, err := uuid.Parse(s)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign influencer ID format"))
			return
		}
		edge = &e
	}
	posts, err := h.processor.ListPosts(c.Request.Context(), id, edge)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) HandleUpdatePost(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	post, ok := postID(c)
	if !ok {
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	date, err := parseDate(req.PublicationDate)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	updated, err := h.processor.UpdatePost(c.Request.Context(), id, post, processor.UpdatePostParams{
		Format:          req.Format,
		Platform:        req.Platform,
		PublicationDate: date,
		Permalink:       req.Permalink,
		Caption:         req.Caption,
		Thumbnails:      req.Thumbnails,
		Metrics:         req.Metrics,
		ScreensCount:    req.ScreensCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) HandleDeletePost(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}
	post, ok := postID(c)
	if !ok {
		return
	}
	if err := h.processor.DeletePost(c.Request.Context(), id, post); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := domain.ParseDateFlex(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func campaignID(c *gin.Context) (uuid.UUID, bool) {
	return pathID(c, "campaign_id", "Invalid campaign ID format")
}

func edgeID(c *gin.Context) (uuid.UUID, bool) {
	return pathID(c, "edge_id", "Invalid campaign influencer ID format")
}

func postID(c *gin.Context) (uuid.UUID, bool) {
	return pathID(c, "post_id", "Invalid post ID format")
}

func pathID(c *gin.Context, param, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, msg))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Campaign not found"))
	case errors.Is(err, processor.ErrEdgeNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Influencer is not attached to this campaign"))
	case errors.Is(err, processor.ErrPostNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Post not found"))
	case errors.Is(err, processor.ErrAlreadyAttached):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "Influencer already attached to this campaign"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
