package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/api/handlers"
	"github.com/barakatna/platform/backend/internal/api/middleware"
	"github.com/barakatna/platform/backend/internal/config"
	"github.com/barakatna/platform/backend/internal/logger"
	"github.com/barakatna/platform/backend/internal/metrics"
	"github.com/barakatna/platform/backend/internal/models"
	"github.com/barakatna/platform/backend/internal/services"
)

// Register wires up API routes and performs automatic migrations.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) error {
	if err := db.AutoMigrate(
		&models.AuditRecord{},
		&models.User{},
		&models.ClientType{},
		&models.BusinessRule{},
		&models.Setting{},
		&models.Notification{},
		&models.NotificationProvider{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	router.GET("/api/v1/health", handlers.HealthHandler)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")

	authService := services.NewAuthService(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg.IsProduction())
	authMiddleware := middleware.AuthMiddleware(authService)

	notificationService := services.NewNotificationService(db)
	auditService := services.NewAuditService(db, notificationService)
	backupService := services.NewBackupService(&cfg, notificationService)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	protected := api.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		// Audit log
		auditHandler := handlers.NewAuditHandler(auditService)
		protected.POST("/audit/records", auditHandler.Create)
		protected.GET("/audit/records", auditHandler.List)
		protected.GET("/audit/records/:uuid", auditHandler.Get)
		protected.GET("/audit/records/:uuid/related", auditHandler.Related)
		protected.GET("/audit/timelines", auditHandler.Timelines)
		protected.GET("/audit/filters", auditHandler.FilterOptions)
		protected.GET("/audit/export", auditHandler.Export)

		// Client types
		clientTypeHandler := handlers.NewClientTypeHandler(services.NewClientTypeService(db))
		protected.GET("/client-types", clientTypeHandler.List)
		protected.GET("/client-types/:code", clientTypeHandler.Get)

		// Business rules
		ruleHandler := handlers.NewRuleHandler(services.NewRuleService(db))
		protected.GET("/rules", ruleHandler.List)
		protected.GET("/rules/:uuid", ruleHandler.Get)

		// Settings
		settingsHandler := handlers.NewSettingsHandler(db)
		protected.GET("/settings", settingsHandler.GetSettings)

		// System info
		systemHandler := handlers.NewSystemHandler()
		protected.GET("/system/my-ip", systemHandler.GetMyIP)

		// Notifications
		notificationHandler := handlers.NewNotificationHandler(notificationService)
		protected.GET("/notifications", notificationHandler.List)
		protected.POST("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)

		// Admin-only mutations
		admin := protected.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/client-types", clientTypeHandler.Create)
			admin.PUT("/client-types/:code", clientTypeHandler.Update)
			admin.DELETE("/client-types/:code", clientTypeHandler.Delete)

			admin.POST("/rules", ruleHandler.Create)
			admin.PUT("/rules/:uuid", ruleHandler.Update)
			admin.DELETE("/rules/:uuid", ruleHandler.Delete)

			admin.POST("/settings", settingsHandler.UpdateSetting)

			backupHandler := handlers.NewBackupHandler(backupService)
			admin.GET("/backups", backupHandler.List)
			admin.POST("/backups", backupHandler.Create)
			admin.GET("/backups/:filename/download", backupHandler.Download)
			admin.DELETE("/backups/:filename", backupHandler.Delete)
			admin.POST("/backups/:filename/restore", backupHandler.Restore)

			admin.GET("/notifications/providers", notificationHandler.ListProviders)
			admin.POST("/notifications/providers", notificationHandler.CreateProvider)
			admin.PUT("/notifications/providers/:id", notificationHandler.UpdateProvider)
			admin.DELETE("/notifications/providers/:id", notificationHandler.DeleteProvider)
			admin.POST("/notifications/providers/test", notificationHandler.TestProvider)
		}
	}

	if _, err := backupService.StartSchedule(); err != nil {
		logger.Log().WithError(err).Warn("Failed to start backup schedule")
	}

	return nil
}
