package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/api/handlers"
	"event_quiz/internal/middleware"
	"event_quiz/internal/models"
	"event_quiz/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	userHandler := handlers.NewUserHandler(services.User)
	questionHandler := handlers.NewQuestionHandler(services.Quiz)
	answerHandler := handlers.NewAnswerHandler(services.Quiz)
	resultHandler := handlers.NewResultHandler(services.Draw)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 抽獎頁面輪詢用：題目、參加者名單與抽獎結果
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/users", userHandler.ListUsers)
		api.GET("/results", resultHandler.ListResults)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 答題相關：任何登入用戶皆可
		authorized.GET("/questions/check", questionHandler.CheckCompletion)
		authorized.POST("/answers", answerHandler.SubmitAnswer)
		authorized.GET("/answers", answerHandler.ListAnswers)

		// 題目管理：admin 與 super_admin 皆可
		questionAdmin := authorized.Group("/questions")
		questionAdmin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))
		{
			questionAdmin.POST("", questionHandler.CreateQuestion)
			questionAdmin.PUT("/:id", questionHandler.UpdateQuestion)
		}

		// 以下僅限 admin
		admin := authorized.Group("/")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.DELETE("/questions/:id", questionHandler.DeleteQuestion)
			admin.DELETE("/answers/:id", answerHandler.DeleteAnswer)

			// 用戶管理
			admin.POST("/users", userHandler.CreateUser)
			admin.PUT("/users/:id", userHandler.UpdateUser)
			admin.DELETE("/users/:id", userHandler.DeleteUser)

			// 抽獎結果管理
			admin.POST("/results", resultHandler.CreateResult)
			admin.POST("/results/draw", resultHandler.RunDraw)
			admin.PUT("/results/:id", resultHandler.UpdateResult)
			admin.DELETE("/results/:id", resultHandler.DeleteResult)
		}
	}
}
