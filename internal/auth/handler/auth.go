package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/auth/processor"
	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	ContextUserID   = "User-ID"
	ContextUserRole = "User-Role"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Name     string `json:"name" binding:"required,max=120"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateInviteRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	TTLHours int    `json:"ttl_hours" binding:"omitempty,min=1,max=720"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleEmailLogin(c *gin.Context) {
	ctx := c.Request.Context()
	var req EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, loggedIn)
}

// HandleJWTMiddleware rejects requests without a valid bearer token and puts
// the caller's id and role on the gin context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")
	// Browsers cannot set headers on a websocket handshake.
	if tokenHeader == "" && websocket.IsWebSocketUpgrade(c.Request) && c.Query("access_token") != "" {
		tokenHeader = "Bearer " + c.Query("access_token")
	}
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid or expired session"))
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid or expired session"))
		c.Abort()
		return
	}
	c.Set(ContextUserID, sub)
	c.Set(ContextUserRole, claims.Role)
	c.Next()
}

// HandleAdminMiddleware must run after HandleJWTMiddleware.
func (h *Handler) HandleAdminMiddleware(c *gin.Context) {
	if c.GetString(ContextUserRole) != string(domain.RoleAdmin) {
		apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeForbidden, "Administrator access required"))
		c.Abort()
		return
	}
	c.Next()
}

// UserID reads the authenticated user id set by HandleJWTMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ContextUserID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) HandleGetMe(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}
	user, err := h.authProcessor.GetUser(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) HandleChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if err := h.authProcessor.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleListUsers(c *gin.Context) {
	users, err := h.authProcessor.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) HandleSetUserActive(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}
	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if self, ok := UserID(c); ok && self == userID && !*req.Active {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "You cannot deactivate your own account"))
		return
	}
	user, err := h.authProcessor.SetUserActive(ctx, userID, *req.Active)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleCreateInvite(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	invite, err := h.authProcessor.CreateInvite(ctx, userID, req.Email, time.Duration(req.TTLHours)*time.Hour)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

func (h *Handler) HandleListInvites(c *gin.Context) {
	invites, err := h.authProcessor.ListInvites(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

func (h *Handler) HandleDeleteInvite(c *gin.Context) {
	inviteID, err := uuid.Parse(c.Param("invite_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid invite ID format"))
		return
	}
	if err := h.authProcessor.DeleteInvite(c.Request.Context(), inviteID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleValidateInvite is public: the sign-up screen checks the token first.
func (h *Handler) HandleValidateInvite(c *gin.Context) {
	invite, err := h.authProcessor.ValidateInvite(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":         true,
		"invitee_email": invite.InviteeEmail,
		"expires_at":    invite.ExpiresAt,
	})
}

func (h *Handler) HandleAcceptInvite(c *gin.Context) {
	ctx := c.Request.Context()
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	loggedIn, err := h.authProcessor.AcceptInvite(ctx, req.Token, req.Email, req.Name, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loggedIn)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidCredentials), errors.Is(err, processor.ErrUserInactive):
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid email or password"))
	case errors.Is(err, processor.ErrInviteUsed):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeInviteUsed, "This invite was already used"))
	case errors.Is(err, processor.ErrInvalidInvite), errors.Is(err, processor.ErrInviteExpired):
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInvite, "Invite is invalid or expired"))
	case errors.Is(err, processor.ErrInviteEmailMismatch):
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInvite, "Invite was issued for another email"))
	case errors.Is(err, processor.ErrEmailAlreadyExists):
		apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeEmailExists, "An account with this email already exists"))
	case errors.Is(err, processor.ErrUserNotFound):
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "User not found"))
	default:
		apierrors.RespondWithError(c, err)
	}
}
