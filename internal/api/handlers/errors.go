package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/service"
)

// respondServiceError 將 service 層的業務錯誤對應到 HTTP 狀態碼。
// 不在清單內的錯誤視為儲存層故障，回傳 500 與 fallback 訊息，
// 不把內部細節洩漏給呼叫端。
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOptionNotInChoices),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrWinnerNotFound),
		errors.Is(err, service.ErrNameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
