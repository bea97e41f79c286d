package handler

import (
	"errors"
	"net/http"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/influencers/processor"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InfluencersProcessor
	logger    *observability.Logger
}

func New(processor processor.InfluencersProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateInfluencerRequest struct {
	Handle         string  `json:"handle" binding:"required,max=100"`
	DisplayName    string  `json:"display_name" binding:"max=200"`
	Network        string  `json:"network" binding:"required"`
	Followers      int64   `json:"followers" binding:"min=0"`
	EngagementRate float64 `json:"engagement_rate" binding:"min=0"`
	AirScore       float64 `json:"air_score" binding:"min=0,max=1"`
	Classification string  `json:"classification"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url"`
	ProfileID      *string `json:"profile_id"`
}

type LookupRequest struct {
	Username string `json:"username" binding:"required"`
	Network  string `json:"network" binding:"required"`
}

type UpdateInfluencerRequest struct {
	Handle         *string  `json:"handle" binding:"omitempty,max=100"`
	DisplayName    *string  `json:"display_name" binding:"omitempty,max=200"`
	Followers      *int64   `json:"followers" binding:"omitempty,min=0"`
	EngagementRate *float64 `json:"engagement_rate" binding:"omitempty,min=0"`
	AirScore       *float64 `json:"air_score" binding:"omitempty,min=0,max=1"`
	PhotoURL       *string  `json:"photo_url" binding:"omitempty,url"`
}

type LinkRequest struct {
	LinkedInfluencerID uuid.UUID `json:"linked_influencer_id" binding:"required"`
}

func (h *Handler) HandleCreateInfluencer(c *gin.Context) {
	var req CreateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	inf, err := h.processor.Create(c.Request.Context(), processor.CreateParams{
		Handle:         req.Handle,
		DisplayName:    req.DisplayName,
		Network:        req.Network,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		AirScore:       req.AirScore,
		Classification: req.Classification,
		PhotoURL:       req.PhotoURL,
		ProfileID:      req.ProfileID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inf)
}

// HandleLookupInfluencer creates or refreshes an influencer from the profile API.
func (h *Handler) HandleLookupInfluencer(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	inf, created, err := h.processor.Lookup(c.Request.Context(), req.Username, req.Network)
	if err != nil {
		h.handleError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, inf)
}

func (h *Handler) HandleListInfluencers(c *gin.Context) {
	list, err := h.processor.List(c.Request.Context(), store.InfluencerFilter{
		Network:        c.Query("network"),
		Classification: c.Query("tier"),
		Search:         c.Query("q"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleGetInfluencer(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	inf, err := h.processor.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inf)
}

func (h *Handler) HandleUpdateInfluencer(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	var req UpdateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	inf, err := h.processor.Update(c.Request.Context(), id, processor.UpdateParams{
		Handle:         req.Handle,
		DisplayName:    req.DisplayName,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		AirScore:       req.AirScore,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inf)
}

func (h *Handler) HandleDeleteInfluencer(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	if err := h.processor.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleRecomputeTier(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	inf, err := h.processor.RecomputeTier(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inf)
}

func (h *Handler) HandleLinkInfluencer(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if err := h.processor.Link(c.Request.Context(), id, req.LinkedInfluencerID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleUnlinkInfluencer(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	if err := h.processor.Unlink(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleInfluencerPerformance(c *gin.Context) {
	id, ok := influencerID(c)
	if !ok {
		return
	}
	perf, err := h.processor.Performance(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

func influencerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("influencer_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid influencer ID format"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInfluencerNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "Influencer not found"))
	case errors.Is(err, processor.ErrInfluencerExists):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "Influencer already registered for this network"))
	case errors.Is(err, processor.ErrInfluencerInUse):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeConflict, "Influencer is attached to campaigns"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
