package app

import (
	"quiz_app_backend/docs"
	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/middleware"
	"quiz_app_backend/internal/model"
	"quiz_app_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, s.token))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login/admin", c.auth.AdminLogin)
		public.POST("/login/user", c.auth.UserLogin)
		public.POST("/register/user", c.user.Register)
		public.GET("/ranking/general", c.ranking.General)
	}
}

// Rotas de qualquer sessão autenticada, admin ou usuário regular.
func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/logout", c.auth.Logout)

	rg.GET("/quizzes", c.quiz.Index)
	rg.GET("/quizzes/:quizId", c.quiz.Show)
	rg.GET("/quizzes/:quizId/questions", c.question.Index)
	rg.GET("/quizzes/:quizId/questions/:id", c.question.Show)

	rg.GET("/participations", c.participation.Index)
	rg.GET("/participations/:id", c.participation.Show)
	rg.GET("/quizzes/:quizId/participations", c.participation.IndexByQuiz)
	rg.POST("/quizzes/:quizId/participations", c.participation.Store)

	rg.GET("/ranking/quiz/:quizId", c.ranking.ByQuiz)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/quizzes", c.quiz.Store)
		admin.PATCH("/quizzes/:quizId", c.quiz.Update)
		admin.DELETE("/quizzes/:quizId", c.quiz.Destroy)

		admin.POST("/quizzes/:quizId/questions", c.question.Store)
		admin.PATCH("/quizzes/:quizId/questions/:id", c.question.Update)
		admin.PUT("/quizzes/:quizId/questions/:id", c.question.Update)
		admin.DELETE("/quizzes/:quizId/questions/:id", c.question.Destroy)

		// Atalhos sem o escopo do quiz pai.
		admin.PATCH("/questions/:id", c.question.UpdateByID)
		admin.PUT("/questions/:id", c.question.UpdateByID)
		admin.DELETE("/questions/:id", c.question.DestroyByID)

		admin.GET("/users", c.user.Index)
		admin.GET("/users/:id", c.user.Show)
		admin.PATCH("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Destroy)
	}
}
