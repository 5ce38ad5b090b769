package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"event_quiz/internal/models"
	"event_quiz/internal/service"
)

// ResultHandler 處理與抽獎結果相關的請求
type ResultHandler struct {
	drawService *service.DrawService
}

// NewResultHandler 創建一個新的 ResultHandler 實例
func NewResultHandler(drawService *service.DrawService) *ResultHandler {
	return &ResultHandler{drawService: drawService}
}

// CreateResultInput 定義建立抽獎結果的請求結構
type CreateResultInput struct {
	WinnerID *uint `json:"winnerId"`
}

// UpdateResultInput 定義修改抽獎結果的請求結構。
// winnerId 缺漏時會被覆寫為 NULL，而不是保留原值。
type UpdateResultInput struct {
	WinnerID *uint `json:"winnerId"`
	IsDrawn  bool  `json:"isDrawn"`
}

// resultView 是抽獎結果的對外格式，得獎者只露出 id 與名稱
type resultView struct {
	ID       uint        `json:"id"`
	DrawTime string      `json:"draw_time"`
	IsDrawn  bool        `json:"is_drawn"`
	Winner   *winnerView `json:"winner"`
}

type winnerView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toResultView(result *models.DrawResult) resultView {
	view := resultView{
		ID:       result.ID,
		DrawTime: result.DrawTime.Format(time.RFC3339),
		IsDrawn:  result.IsDrawn,
	}
	if result.Winner != nil {
		view.Winner = &winnerView{ID: result.Winner.ID, Name: result.Winner.Name}
	}
	return view
}

// ListResults 回傳所有抽獎結果，由新到舊排序，
// 第一筆即為前端顯示的「本次抽獎」
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.drawService.Results()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法取得抽獎結果"})
		return
	}

	views := make([]resultView, 0, len(results))
	for i := range results {
		views = append(views, toResultView(&results[i]))
	}
	c.JSON(http.StatusOK, views)
}

// CreateResult 處理建立抽獎結果的請求
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var input CreateResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.drawService.CreateResult(input.WinnerID)
	if err != nil {
		respondServiceError(c, err, "建立抽獎結果失敗")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "抽獎結果已建立", "result": result})
}

// UpdateResult 處理修改抽獎結果的請求
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	resultID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的抽獎結果ID"})
		return
	}

	var input UpdateResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.drawService.UpdateResult(uint(resultID), input.WinnerID, input.IsDrawn)
	if err != nil {
		respondServiceError(c, err, "修改抽獎結果失敗")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "抽獎結果已更新", "result": result})
}

// DeleteResult 處理刪除抽獎結果的請求
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	resultID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的抽獎結果ID"})
		return
	}

	if err := h.drawService.DeleteResult(uint(resultID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除抽獎結果失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "抽獎結果已刪除"})
}

// RunDraw 在伺服器端執行一次加權抽獎並寫入結果
func (h *ResultHandler) RunDraw(c *gin.Context) {
	result, err := h.drawService.PerformDraw()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "抽獎失敗"})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"status": "no_participants", "message": "目前沒有任何參加者"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "抽獎完成", "result": result})
}
