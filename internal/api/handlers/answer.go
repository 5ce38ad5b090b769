package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/service"
)

// AnswerHandler 處理與作答紀錄相關的請求
type AnswerHandler struct {
	quizService *service.QuizService
}

// NewAnswerHandler 創建一個新的 AnswerHandler 實例
func NewAnswerHandler(quizService *service.QuizService) *AnswerHandler {
	return &AnswerHandler{quizService: quizService}
}

// SubmitAnswerInput 定義送出作答的請求結構。
// 作答者身份取自 token，不接受呼叫端指定。
type SubmitAnswerInput struct {
	QuestionID     uint   `json:"questionId" binding:"required"`
	SelectedAnswer string `json:"selectedAnswer" binding:"required"`
}

// SubmitAnswer 處理送出作答的請求
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var input SubmitAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	answer, err := h.quizService.SubmitAnswer(userID.(uint), input.QuestionID, input.SelectedAnswer)
	if err != nil {
		respondServiceError(c, err, "紀錄作答失敗")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "answer": answer})
}

// ListAnswers 處理查詢某用戶全部作答的請求
func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	userIDParam := c.Query("userId")
	if userIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "需要 userId 參數"})
		return
	}

	userID, err := strconv.ParseUint(userIDParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的 userId"})
		return
	}

	answers, err := h.quizService.AnswersForUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法取得作答紀錄"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "answers": answers})
}

// DeleteAnswer 處理刪除作答紀錄的請求
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的作答ID"})
		return
	}

	if err := h.quizService.DeleteAnswer(uint(answerID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除作答紀錄失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "作答紀錄已刪除"})
}
