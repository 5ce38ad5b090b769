package main

import (
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"event_quiz/internal/api"
	"event_quiz/internal/config"
	"event_quiz/internal/models"
	"event_quiz/internal/repository"
	"event_quiz/internal/service"
	"event_quiz/internal/storage"
	"event_quiz/internal/utils"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 設定 JWT 簽章密鑰
	utils.SetJWTSecret(cfg.JWT.Secret)

	// 初始化抽獎事件日誌
	defer logger.Init("event_quiz", true, false, os.Stderr).Close()

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Question{}, &models.Answer{}, &models.DrawResult{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 若配置中的管理員帳號尚未存在，於啟動時建立
	if err := seedAdmin(services.User, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// seedAdmin 確保配置中指定的管理員帳號存在
func seedAdmin(userService *service.UserService, admin config.AdminConfig) error {
	if admin.Name == "" || admin.Password == "" {
		return nil
	}

	_, err := userService.GetUserByName(admin.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, service.ErrUserNotFound) {
		return err
	}

	if _, err := userService.CreateUser(admin.Name, admin.Password, models.RoleAdmin); err != nil {
		return err
	}

	log.Printf("Admin user %q seeded", admin.Name)
	return nil
}
