package routes

import (
	"field_estimator/internal/adapter/http/handlers"
	"field_estimator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI          = "/api"
	PathJobs         = "/jobs"
	PathPricingRules = "/pricing-rules"
	PathPayments     = "/payments"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Invites     *handlers.InviteHandler
	Members     *handlers.MemberHandler
	Catalog     *handlers.CatalogHandler
	Settings    *handlers.SettingsHandler
	PricingRule *handlers.PricingRuleHandler
	Jobs        *handlers.JobHandler
	JobPayments *handlers.JobPaymentHandler
	Photos      *handlers.PhotoHandler
	Audit       *handlers.AuditHandler
}

// RegisterAPI mounts the probes and the public and authenticated /api
// routes.
func RegisterAPI(r gin.IRouter, h Handlers, tokens middleware.TokenParser) {
	r.GET("/ping", h.Health.Ping)
	r.GET("/health", h.Health.Health)

	api := r.Group(PathAPI)
	addPublicRoutes(api, h)

	authed := api.Group("", middleware.Auth(tokens))
	addAccountRoutes(authed, h)
	addCatalogRoutes(authed, h)
	addPricingRoutes(authed, h)
	addJobRoutes(authed, h)
}

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST("/auth/login", h.Auth.Login)
	rg.POST("/invite/accept", h.Invites.AcceptInvite)

	rg.GET("/trades", h.Catalog.ListTrades)
	rg.GET("/trades/:tradeId/specialties", h.Catalog.ListSpecialties)
	rg.GET("/specialties", h.Catalog.ListSpecialties)
	rg.GET("/regions", h.Catalog.ListRegions)
}

func addAccountRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("/auth/me", h.Auth.Me)

	rg.POST("/invite/create", h.Invites.CreateInvite)
	rg.GET("/invite/list", h.Invites.ListInvites)

	rg.GET("/admin/users", h.Members.ListMembers)
	rg.PATCH("/admin/users/:userId/permissions", h.Members.UpdatePermissions)
	rg.PUT("/employees/:userId/active", h.Members.SetActive)

	rg.GET("/settings", h.Settings.GetSettings)
	rg.POST("/settings", h.Settings.SaveSettings)
	rg.PUT("/settings", h.Settings.SaveSettings)

	rg.GET("/audit", h.Audit.ListAudit)
}

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("/services", h.Catalog.ListServices)
	rg.GET("/trades/:tradeId/services", h.Catalog.ListServices)
	rg.GET("/specialties/:specialtyId/services", h.Catalog.ListServices)
}

func addPricingRoutes(rg *gin.RouterGroup, h Handlers) {
	rules := rg.Group(PathPricingRules)
	{
		rules.GET("", h.PricingRule.ListRules)
		rules.POST("", h.PricingRule.CreateRule)
		rules.POST("/quote", h.PricingRule.Quote)
		rules.PUT("/:id", h.PricingRule.UpdateRule)
	}
}

func addJobRoutes(rg *gin.RouterGroup, h Handlers) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.Jobs.ListJobs)
		jobs.POST("", h.Jobs.CreateJob)
		jobs.GET("/:id", h.Jobs.GetJob)
		jobs.PUT("/:id", h.Jobs.UpdateJob)
		jobs.DELETE("/:id", h.Jobs.DeleteJob)
		jobs.GET("/:id/totals", h.Jobs.GetTotals)
		jobs.PATCH("/:id/status", h.Jobs.ChangeStatus)
		jobs.PUT("/:id/assignments/:userId", h.Jobs.AssignJob)
		jobs.GET("/:id/permissions/me", h.Jobs.MyPermissions)
		jobs.GET("/:id/photos", h.Photos.ListJobPhotos)
		jobs.POST("/:id/payments", h.JobPayments.CreatePayment)
		jobs.GET("/:id/payments", h.JobPayments.ListPayments)
	}

	rg.GET(PathPayments+"/:paymentId", h.JobPayments.GetPayment)
	rg.POST("/estimate-photos", h.Photos.UploadPhoto)
}
