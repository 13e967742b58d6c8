package app

import (
	"formforge_backend/docs"
	"formforge_backend/internal/config"
	"formforge_backend/internal/middleware"
	"formforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 表单的增删改查。与原型保持一致，构建端不做登录门槛
		public.GET("/forms", c.form.ListForms)
		public.POST("/forms", c.form.CreateForm)
		public.GET("/share/:shareUrl", c.form.GetSharedForm)
		public.GET("/forms/:id", c.form.GetForm)
		public.PUT("/forms/:id", c.form.UpdateForm)
		public.DELETE("/forms/:id", c.form.DeleteForm)

		// 答卷
		public.POST("/forms/:id/responses", c.response.SubmitResponse)
		public.GET("/forms/:id/responses", c.response.ListResponses)

		// 上传
		public.POST("/upload", c.upload.UploadImage)
		public.POST("/objects/upload", c.upload.GetUploadURL)
	}

	router.GET("/public-objects/*path", c.upload.ServeObject)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
	}
}
