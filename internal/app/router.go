package app

import (
	"time"

	"mindscreen_backend/internal/middleware"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/pkg/monitoring"
	"mindscreen_backend/pkg/security"
	"mindscreen_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupRouter(ctls *controllers) *gin.Engine {
	gin.SetMode(a.Config.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(security.CORS(a.Config.CORS.AllowedOrigins))
	r.Use(security.Secure())
	r.Use(monitoring.MetricsMiddleware())
	if a.Config.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}
	if a.Config.RateLimit.MaxRequests > 0 {
		window := time.Duration(a.Config.RateLimit.WindowMinutes) * time.Minute
		r.Use(security.RateLimiter(a.Config.RateLimit.MaxRequests, window))
	}

	r.GET("/health", ctls.Health.Health)
	r.GET("/metrics", monitoring.PrometheusHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public: registration, login and the respondent-facing form.
	v1.POST("/auth/register", ctls.Auth.Register)
	v1.POST("/auth/login", ctls.Auth.Login)
	v1.GET("/forms/:token", ctls.Quest.PublicForm)
	v1.POST("/forms/:token/responses", ctls.Response.Submit)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(a.Config))
	authed.Use(middleware.ActivityMiddleware(ctls.userActivity))
	{
		authed.GET("/auth/profile", ctls.Auth.Profile)

		authed.GET("/organization", ctls.Org.Get)
		authed.PUT("/organization", middleware.RoleMiddleware(model.Admin), ctls.Org.Update)
		authed.GET("/organization/members", ctls.Org.ListMembers)
		authed.POST("/organization/members", middleware.RoleMiddleware(model.Admin), ctls.Org.CreateMember)
		authed.DELETE("/organization/members/:id", middleware.RoleMiddleware(model.Admin), ctls.Org.RemoveMember)

		staff := authed.Group("")
		staff.Use(middleware.RoleMiddleware(model.Admin, model.Clinician))
		{
			staff.POST("/questionnaires", ctls.Quest.Create)
			staff.GET("/questionnaires", ctls.Quest.List)
			staff.GET("/questionnaires/:id", ctls.Quest.Get)
			staff.PUT("/questionnaires/:id", ctls.Quest.Update)
			staff.DELETE("/questionnaires/:id", ctls.Quest.Delete)
			staff.POST("/questionnaires/:id/publish", ctls.Quest.Publish)
			staff.POST("/questionnaires/:id/unpublish", ctls.Quest.Unpublish)

			staff.POST("/questionnaires/:id/questions", ctls.Quest.CreateQuestion)
			staff.PUT("/questionnaires/:id/questions/:questionId", ctls.Quest.UpdateQuestion)
			staff.DELETE("/questionnaires/:id/questions/:questionId", ctls.Quest.DeleteQuestion)

			staff.POST("/questionnaires/:id/scoring-configs", ctls.Config.Create)
			staff.GET("/questionnaires/:id/scoring-configs", ctls.Config.List)
			staff.PUT("/questionnaires/:id/scoring-configs/:configId", ctls.Config.Update)
			staff.DELETE("/questionnaires/:id/scoring-configs/:configId", ctls.Config.Delete)
			staff.POST("/questionnaires/:id/scoring-configs/:configId/activate", ctls.Config.Activate)

			staff.GET("/questionnaires/:id/responses", ctls.Response.List)
			staff.GET("/responses/:id", ctls.Response.Detail)
			staff.DELETE("/responses/:id", ctls.Response.Delete)
			staff.POST("/responses/:id/score", ctls.Response.Score)

			staff.POST("/questionnaires/:id/export", ctls.Export.ExportCSV)
		}

		authed.GET("/notifications", ctls.Notification.List)
		authed.GET("/notifications/unread-count", ctls.Notification.UnreadCount)
		authed.POST("/notifications/:id/read", ctls.Notification.MarkRead)
	}

	return r
}
