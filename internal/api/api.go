package api

import (
	"net/http"

	authHandler "air-relatorios/internal/auth/handler"
	campaignHandler "air-relatorios/internal/campaign/handler"
	commentsHandler "air-relatorios/internal/comments/handler"
	customersHandler "air-relatorios/internal/customers/handler"
	exportsHandler "air-relatorios/internal/exports/handler"
	influencersHandler "air-relatorios/internal/influencers/handler"
	insightsHandler "air-relatorios/internal/insights/handler"
	"air-relatorios/internal/ratelimit"
	reportHandler "air-relatorios/internal/report/handler"
	shareHandler "air-relatorios/internal/share/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        authHandler.Handler
	Customers   customersHandler.Handler
	Influencers influencersHandler.Handler
	Campaign    campaignHandler.Handler
	Report      reportHandler.Handler
	Insights    insightsHandler.Handler
	Comments    commentsHandler.Handler
	Share       shareHandler.Handler
	Exports     exportsHandler.Handler
}

type API struct {
	router        *gin.RouterGroup
	handlers      Handlers
	rateLimiter   *ratelimit.Service
	publicRPM     int
	loginAttempts int
}

// New builds the router. limiter may be nil, which leaves the public routes
// unthrottled.
func New(router *gin.RouterGroup, handlers Handlers, limiter *ratelimit.Service, publicRPM int) API {
	return API{
		router:        router,
		handlers:      handlers,
		rateLimiter:   limiter,
		publicRPM:     publicRPM,
		loginAttempts: 10,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login/email", a.limit("login", a.loginAttempts), a.handlers.Auth.HandleEmailLogin)
		authGroup.GET("/invites/:token", a.handlers.Auth.HandleValidateInvite)
		authGroup.POST("/invites/accept", a.limit("invite_accept", a.loginAttempts), a.handlers.Auth.HandleAcceptInvite)
	}

	publicGroup := apiGroup.Group("/public", a.limit("public_report", a.publicRPM))
	{
		publicGroup.GET("/report", a.handlers.Share.HandlePublicReport)
		publicGroup.GET("/report/pages", a.handlers.Share.HandlePublicInfo)
	}

	protectedGroup := apiGroup.Group("/protected", a.handlers.Auth.HandleJWTMiddleware)
	{
		protectedGroup.GET("/me", a.handlers.Auth.HandleGetMe)
		protectedGroup.POST("/me/password", a.handlers.Auth.HandleChangePassword)

		a.customerRoutes(protectedGroup)
		a.influencerRoutes(protectedGroup)
		a.campaignRoutes(protectedGroup)

		adminGroup := protectedGroup.Group("/admin", a.handlers.Auth.HandleAdminMiddleware)
		adminGroup.GET("/users", a.handlers.Auth.HandleListUsers)
		adminGroup.PUT("/users/:user_id/active", a.handlers.Auth.HandleSetUserActive)
		adminGroup.POST("/invites", a.handlers.Auth.HandleCreateInvite)
		adminGroup.GET("/invites", a.handlers.Auth.HandleListInvites)
		adminGroup.DELETE("/invites/:invite_id", a.handlers.Auth.HandleDeleteInvite)
	}
}

func (a *API) customerRoutes(group *gin.RouterGroup) {
	clients := group.Group("/clients")
	clients.POST("", a.handlers.Customers.HandleCreateClient)
	clients.GET("", a.handlers.Customers.HandleListClients)
	clients.GET("/:client_id", a.handlers.Customers.HandleGetClient)
	clients.PUT("/:client_id", a.handlers.Customers.HandleUpdateClient)
	clients.DELETE("/:client_id", a.handlers.Customers.HandleDeleteClient)

	categories := group.Group("/categories")
	categories.POST("", a.handlers.Customers.HandleCreateCategory)
	categories.GET("", a.handlers.Customers.HandleListCategories)
	categories.PUT("/:category_id", a.handlers.Customers.HandleRenameCategory)
	categories.DELETE("/:category_id", a.handlers.Customers.HandleDeleteCategory)
}

func (a *API) influencerRoutes(group *gin.RouterGroup) {
	influencers := group.Group("/influencers")
	influencers.POST("", a.handlers.Influencers.HandleCreateInfluencer)
	influencers.POST("/lookup", a.handlers.Influencers.HandleLookupInfluencer)
	influencers.GET("", a.handlers.Influencers.HandleListInfluencers)
	influencers.GET("/:influencer_id", a.handlers.Influencers.HandleGetInfluencer)
	influencers.PUT("/:influencer_id", a.handlers.Influencers.HandleUpdateInfluencer)
	influencers.DELETE("/:influencer_id", a.handlers.Influencers.HandleDeleteInfluencer)
	influencers.POST("/:influencer_id/recompute-tier", a.handlers.Influencers.HandleRecomputeTier)
	influencers.POST("/:influencer_id/link", a.handlers.Influencers.HandleLinkInfluencer)
	influencers.DELETE("/:influencer_id/link", a.handlers.Influencers.HandleUnlinkInfluencer)
	influencers.GET("/:influencer_id/performance", a.handlers.Influencers.HandleInfluencerPerformance)
}

func (a *API) campaignRoutes(group *gin.RouterGroup) {
	campaigns := group.Group("/campaigns")
	campaigns.POST("", a.handlers.Campaign.HandleCreateCampaign)
	campaigns.GET("", a.handlers.Campaign.HandleListCampaigns)

	campaign := campaigns.Group("/:campaign_id")
	campaign.GET("", a.handlers.Campaign.HandleGetCampaign)
	campaign.PUT("", a.handlers.Campaign.HandleUpdateCampaign)
	campaign.DELETE("", a.handlers.Campaign.HandleDeleteCampaign)
	campaign.PUT("/comment-categories", a.handlers.Campaign.HandleSetCommentCategories)
	campaign.PUT("/top-contents", a.handlers.Campaign.HandleSetTopContents)
	campaign.POST("/refresh", a.handlers.Campaign.HandleRefreshCampaign)

	campaign.POST("/influencers", a.handlers.Campaign.HandleAttachInfluencer)
	campaign.GET("/influencers", a.handlers.Campaign.HandleListInfluencers)
	campaign.PUT("/influencers/:edge_id", a.handlers.Campaign.HandleUpdateInfluencer)
	campaign.DELETE("/influencers/:edge_id", a.handlers.Campaign.HandleDetachInfluencer)
	campaign.POST("/influencers/:edge_id/posts", a.handlers.Campaign.HandleCreatePost)
	campaign.POST("/influencers/:edge_id/posts/by-link", a.handlers.Campaign.HandleAddPostByLink)

	campaign.GET("/posts", a.handlers.Campaign.HandleListPosts)
	campaign.PUT("/posts/:post_id", a.handlers.Campaign.HandleUpdatePost)
	campaign.DELETE("/posts/:post_id", a.handlers.Campaign.HandleDeletePost)

	campaign.GET("/report", a.handlers.Report.HandleGetReport)
	campaign.GET("/report/:page", a.handlers.Report.HandleGetReportPage)

	campaign.GET("/insights", a.handlers.Insights.HandleListInsights)
	campaign.POST("/insights", a.handlers.Insights.HandleCreateInsight)
	campaign.POST("/insights/generate", a.handlers.Insights.HandleGenerateAll)
	campaign.GET("/insights/generate/stream", a.handlers.Insights.HandleGenerateAllStream)
	campaign.POST("/insights/generate/:page", a.handlers.Insights.HandleGeneratePage)
	campaign.POST("/insights/:insight_id/regenerate", a.handlers.Insights.HandleRegenerate)
	campaign.PUT("/insights/:insight_id", a.handlers.Insights.HandleUpdateInsight)
	campaign.DELETE("/insights/:insight_id", a.handlers.Insights.HandleDeleteInsight)
	campaign.POST("/insights/:insight_id/restore", a.handlers.Insights.HandleRestoreInsight)

	campaign.POST("/comments", a.handlers.Comments.HandleUploadComments)
	campaign.GET("/comments", a.handlers.Comments.HandleListComments)
	campaign.GET("/comments/counts", a.handlers.Comments.HandleCountComments)
	campaign.POST("/comments/reclassify", a.handlers.Comments.HandleReclassify)
	campaign.DELETE("/comments", a.handlers.Comments.HandleDeletePostComments)
	campaign.DELETE("/comments/:comment_id", a.handlers.Comments.HandleDeleteComment)

	campaign.POST("/shares", a.handlers.Share.HandleIssueShare)
	campaign.GET("/shares", a.handlers.Share.HandleListShares)
	campaign.DELETE("/shares/:share_id", a.handlers.Share.HandleDeleteShare)

	campaign.GET("/exports/:kind", a.handlers.Exports.HandleExport)
}

func (a *API) limit(scope string, perMinute int) gin.HandlerFunc {
	if a.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return a.rateLimiter.Middleware(scope, perMinute)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	a.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
