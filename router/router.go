package router

import (
	"context"
	"net/http"
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"
	"fintrack/service"
	"fintrack/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
// ctx 结束时停止限流器的后台清理
func SetupRouter(ctx context.Context, cfg *config.Config, st store.Store) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(middleware.CORS())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	userID := cfg.App.DefaultUserID
	dashboardService := service.NewDashboardService(st)
	exportService := service.NewExportService(st)

	apiGroup := r.Group("/api")
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		go limiter.Run(ctx, time.Minute)
		apiGroup.Use(limiter.Middleware())
	}
	{
		// 类别
		categoryHandler := api.NewCategoryHandler(st, userID)
		categories := apiGroup.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
		}

		// 收支记录
		transactionHandler := api.NewTransactionHandler(st, userID)
		transactions := apiGroup.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
		}

		// 预算
		budgetHandler := api.NewBudgetHandler(st, userID)
		budgets := apiGroup.Group("/budgets")
		{
			budgets.GET("", budgetHandler.List)
			budgets.POST("", budgetHandler.Create)
			budgets.PUT("/:id", budgetHandler.Update)
		}

		// 仪表盘
		dashboardHandler := api.NewDashboardHandler(dashboardService, userID)
		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.Summary)
			dashboard.GET("/categories", dashboardHandler.Categories)
			dashboard.GET("/trends", dashboardHandler.Trends)
		}

		// 导出
		exportHandler := api.NewExportHandler(exportService, userID)
		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
			export.GET("/json", exportHandler.ExportJSON)
		}
	}

	return r
}
