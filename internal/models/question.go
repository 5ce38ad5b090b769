package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question 表示一道單選題
//
// Options 以 JSON 陣列存放，順序即為前端的顯示順序。
// Answer 必須是 Options 其中之一，這個條件由 service 層在寫入前驗證，
// 資料庫本身不強制。管理員可以直接修改題目，已存在的作答紀錄
// 不會因此重新計算對錯（Answer 裡的 Correct 是送出當下的事實）。
type Question struct {
	gorm.Model
	Text    string                      `gorm:"not null" json:"question"`
	Options datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	Answer  string                      `gorm:"not null" json:"answer"`
}

// HasOption 檢查 option 是否為該題的選項之一（區分大小寫）
func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
