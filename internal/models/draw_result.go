package models

import (
	"time"

	"gorm.io/gorm"
)

// DrawResult 表示一次抽獎的結果
//
// WinnerID 可為空（尚未抽出或被管理員作廢），IsDrawn 與 WinnerID
// 並非完全等價：允許「已抽但從缺」的狀態，因此兩個欄位都保留。
// 對外序列化沿用這兩個欄位，內部邏輯請透過 State() 判斷。
type DrawResult struct {
	gorm.Model
	DrawTime time.Time `gorm:"not null" json:"draw_time"`
	WinnerID *uint     `json:"winner_id"`
	IsDrawn  bool      `gorm:"not null;default:false" json:"is_drawn"`
	Winner   *User     `gorm:"constraint:OnDelete:SET NULL" json:"winner,omitempty"` // 得獎者被刪除時改為從缺
}

// DrawState 描述抽獎結果目前所處的狀態
type DrawState int

const (
	DrawStateNotDrawn       DrawState = iota // 尚未抽出
	DrawStateDrawnNoWinner                   // 已抽出但得獎者從缺
	DrawStateDrawnWithWinner                 // 已抽出且有得獎者
)

// State 由 IsDrawn 與 WinnerID 推導出抽獎狀態
func (r *DrawResult) State() DrawState {
	switch {
	case !r.IsDrawn:
		return DrawStateNotDrawn
	case r.WinnerID == nil:
		return DrawStateDrawnNoWinner
	default:
		return DrawStateDrawnWithWinner
	}
}
