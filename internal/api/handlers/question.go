package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/service"
)

// QuestionHandler 處理與題目相關的請求
type QuestionHandler struct {
	quizService *service.QuizService
}

// NewQuestionHandler 創建一個新的 QuestionHandler 實例
func NewQuestionHandler(quizService *service.QuizService) *QuestionHandler {
	return &QuestionHandler{quizService: quizService}
}

// QuestionInput 定義新增與修改題目的請求結構
type QuestionInput struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
}

// ListQuestions 處理取得所有題目的請求
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.quizService.Questions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法取得題目"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion 處理新增題目的請求
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.quizService.CreateQuestion(input.Question, input.Options, input.Answer)
	if err != nil {
		respondServiceError(c, err, "新增題目失敗")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "題目新增成功", "question": question})
}

// UpdateQuestion 處理修改題目的請求
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的題目ID"})
		return
	}

	var input QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.quizService.UpdateQuestion(uint(questionID), input.Question, input.Options, input.Answer)
	if err != nil {
		respondServiceError(c, err, "修改題目失敗")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "題目已更新", "question": question})
}

// DeleteQuestion 處理刪除題目的請求
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的題目ID"})
		return
	}

	if err := h.quizService.DeleteQuestion(uint(questionID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除題目失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "題目已刪除"})
}

// CheckCompletion 處理答題進度查詢
//
// 三種結果的對應：全部答完回傳 204、系統沒有題目回傳
// status=no_questions、還有題目未答則回傳剩餘題目清單。
func (h *QuestionHandler) CheckCompletion(c *gin.Context) {
	userID, _ := c.Get("userID")

	completion, err := h.quizService.Completion(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法檢查答題進度"})
		return
	}

	switch completion.Status {
	case service.CompletionNoQuestions:
		c.JSON(http.StatusOK, gin.H{"status": "no_questions", "message": "目前沒有任何題目"})
	case service.CompletionComplete:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "pending", "questions": completion.Remaining})
	}
}
