package models

import (
	"gorm.io/gorm"
)

// Answer 表示某個用戶對某道題目的作答紀錄
//
// (UserID, QuestionID) 上有複合唯一索引，每人每題只能作答一次，
// 重複送出會在資料庫層被擋下。Correct 在送出當下與題目的正確答案
// 比對後寫入，之後即使題目被修改也不會回頭更動。
type Answer struct {
	gorm.Model
	UserID     uint     `gorm:"not null;uniqueIndex:idx_answers_user_question" json:"user_id"`
	QuestionID uint     `gorm:"not null;uniqueIndex:idx_answers_user_question" json:"question_id"`
	Selected   string   `gorm:"not null" json:"selected"`
	Correct    bool     `gorm:"not null" json:"correct"`
	Question   Question `json:"question"`
}
