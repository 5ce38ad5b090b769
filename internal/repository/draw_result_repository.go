package repository

import (
	"event_quiz/internal/models"
	"event_quiz/internal/storage"
)

type DrawResultRepository interface {
	Create(result *models.DrawResult) error
	FindByID(id uint) (*models.DrawResult, error)
	// FindAll 查詢所有抽獎結果，附帶得獎者，依抽獎時間由新到舊排序，
	// 第一筆即為對外顯示的「本次抽獎」
	FindAll() ([]models.DrawResult, error)
	Update(result *models.DrawResult) error
	Delete(id uint) error
}

type drawResultRepository struct {
	db *storage.PostgresDB
}

func NewDrawResultRepository(db *storage.PostgresDB) DrawResultRepository {
	return &drawResultRepository{db: db}
}

func (r *drawResultRepository) Create(result *models.DrawResult) error {
	return r.db.Create(result).Error
}

func (r *drawResultRepository) FindByID(id uint) (*models.DrawResult, error) {
	var result models.DrawResult
	err := r.db.First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *drawResultRepository) FindAll() ([]models.DrawResult, error) {
	var results []models.DrawResult
	err := r.db.Preload("Winner").
		Order("draw_time DESC").
		Find(&results).Error
	return results, err
}

// Update 以 Select 指定欄位寫入，讓 winner_id 可以被覆寫為 NULL
func (r *drawResultRepository) Update(result *models.DrawResult) error {
	return r.db.Model(result).
		Select("winner_id", "is_drawn").
		Updates(map[string]interface{}{
			"winner_id": result.WinnerID,
			"is_drawn":  result.IsDrawn,
		}).Error
}

func (r *drawResultRepository) Delete(id uint) error {
	return r.db.Delete(&models.DrawResult{}, id).Error
}
