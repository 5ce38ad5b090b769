package repository

import (
	"event_quiz/internal/models"
	"event_quiz/internal/storage"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	// FindByUserID 查詢某用戶的全部作答，附帶題目，依作答時間排序
	FindByUserID(userID uint) ([]models.Answer, error)
	// QuestionIDsByUserID 回傳某用戶已作答過的題目 id
	QuestionIDsByUserID(userID uint) ([]uint, error)
	ExistsByUserAndQuestion(userID, questionID uint) (bool, error)
	Delete(id uint) error
	// CorrectCountsByUser 以單一聚合查詢算出每位用戶答對的題數，
	// 取代逐一用戶各查一次 count 的做法
	CorrectCountsByUser() (map[uint]int, error)
}

type answerRepository struct {
	db *storage.PostgresDB
}

func NewAnswerRepository(db *storage.PostgresDB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByUserID(userID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) QuestionIDsByUserID(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Answer{}).
		Where("user_id = ?", userID).
		Pluck("question_id", &ids).Error
	return ids, err
}

func (r *answerRepository) ExistsByUserAndQuestion(userID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Answer{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

// Delete 實際刪除作答紀錄而非軟刪除，
// 否則殘留的列仍佔用 (user_id, question_id) 唯一索引，
// 會讓該用戶重新作答這道題時被資料庫擋下
func (r *answerRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Answer{}, id).Error
}

func (r *answerRepository) CorrectCountsByUser() (map[uint]int, error) {
	type row struct {
		UserID uint
		Count  int
	}

	var rows []row
	err := r.db.Model(&models.Answer{}).
		Select("user_id, COUNT(*) AS count").
		Where("correct = ?", true).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
