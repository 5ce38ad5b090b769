package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/models"
	"event_quiz/internal/service"
)

// UserHandler 處理與用戶管理相關的請求
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 創建一個新的 UserHandler 實例
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserInput 定義管理員建立用戶的請求結構
type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInput 定義修改用戶的請求結構，密碼為選填
type UpdateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
}

// ListUsers 回傳所有用戶及其成績，供抽獎頁面顯示參加者名單
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.UsersWithScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法取得用戶名單"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser 處理管理員建立用戶的請求
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(input.Name, input.Password, models.RoleUser)
	if err != nil {
		respondServiceError(c, err, "建立用戶失敗")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "user": user})
}

// UpdateUser 處理修改用戶的請求
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的用戶ID"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(uint(userID), input.Name, input.Password)
	if err != nil {
		respondServiceError(c, err, "修改用戶失敗")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
}

// DeleteUser 處理刪除用戶的請求
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的用戶ID"})
		return
	}

	if err := h.userService.DeleteUser(uint(userID)); err != nil {
		respondServiceError(c, err, "刪除用戶失敗")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "用戶已刪除"})
}
