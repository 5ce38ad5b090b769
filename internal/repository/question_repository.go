package repository

import (
	"event_quiz/internal/models"
	"event_quiz/internal/storage"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	FindByID(id uint) (*models.Question, error)
	FindAll() ([]models.Question, error)
	// FindExcluding 查詢 id 不在 excludedIDs 內的題目，供完成度判斷使用
	FindExcluding(excludedIDs []uint) ([]models.Question, error)
	Update(question *models.Question) error
	Delete(id uint) error
	Count() (int64, error)
}

type questionRepository struct {
	db *storage.PostgresDB
}

func NewQuestionRepository(db *storage.PostgresDB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindExcluding(excludedIDs []uint) ([]models.Question, error) {
	var questions []models.Question
	query := r.db.Order("created_at ASC")
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}
