package service

import (
	"errors"

	"gorm.io/gorm"

	"event_quiz/internal/models"
	"event_quiz/internal/repository"
)

// CompletionStatus 表示用戶答題進度的三種狀態
type CompletionStatus int

const (
	CompletionNoQuestions CompletionStatus = iota // 系統內沒有任何題目
	CompletionComplete                            // 所有題目都已作答
	CompletionPending                             // 還有題目未作答
)

// Completion 是完成度查詢的結果，Remaining 只在 Pending 狀態時有內容。
// 每次查詢都重新計算，不做快取，因為題目與作答會同時被其他人改動。
type Completion struct {
	Status    CompletionStatus
	Remaining []models.Question
}

// QuizService 負責題目管理與作答紀錄
type QuizService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewQuizService(questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// SubmitAnswer 記錄一筆作答並在當下判定對錯
//
// 對錯以字串完全比對（區分大小寫）。每人每題只能作答一次，
// 先檢查再寫入，資料庫的複合唯一索引則擋下併發下的重複寫入。
func (s *QuizService) SubmitAnswer(userID, questionID uint, selected string) (*models.Answer, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	if !question.HasOption(selected) {
		return nil, ErrOptionNotInChoices
	}

	exists, err := s.answerRepo.ExistsByUserAndQuestion(userID, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyAnswered
	}

	answer := &models.Answer{
		UserID:     userID,
		QuestionID: questionID,
		Selected:   selected,
		Correct:    selected == question.Answer,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	answer.Question = *question
	return answer, nil
}

// AnswersForUser 查詢某用戶的全部作答（附帶題目）
func (s *QuizService) AnswersForUser(userID uint) ([]models.Answer, error) {
	return s.answerRepo.FindByUserID(userID)
}

func (s *QuizService) DeleteAnswer(id uint) error {
	return s.answerRepo.Delete(id)
}

// Completion 計算某用戶還有哪些題目未作答
func (s *QuizService) Completion(userID uint) (*Completion, error) {
	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &Completion{Status: CompletionNoQuestions}, nil
	}

	answeredIDs, err := s.answerRepo.QuestionIDsByUserID(userID)
	if err != nil {
		return nil, err
	}

	remaining, err := s.questionRepo.FindExcluding(answeredIDs)
	if err != nil {
		return nil, err
	}
	if len(remaining) == 0 {
		return &Completion{Status: CompletionComplete}, nil
	}

	return &Completion{Status: CompletionPending, Remaining: remaining}, nil
}

// Questions 查詢所有題目
func (s *QuizService) Questions() ([]models.Question, error) {
	return s.questionRepo.FindAll()
}

// CreateQuestion 新增題目，寫入前先驗證題目內容
func (s *QuizService) CreateQuestion(text string, options []string, answer string) (*models.Question, error) {
	if err := validateQuestion(text, options, answer); err != nil {
		return nil, err
	}

	question := &models.Question{
		Text:    text,
		Options: options,
		Answer:  answer,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateQuestion 修改題目
//
// 已存在的作答紀錄不會重新計算對錯，管理員修改正確答案後，
// 舊紀錄的 Correct 仍是當初送出時的結果。
func (s *QuizService) UpdateQuestion(id uint, text string, options []string, answer string) (*models.Question, error) {
	if err := validateQuestion(text, options, answer); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	question.Text = text
	question.Options = options
	question.Answer = answer
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}

// validateQuestion 驗證題目內容：文字不可為空、至少兩個選項、
// 正確答案必須是選項之一
func validateQuestion(text string, options []string, answer string) error {
	if text == "" || len(options) < 2 || answer == "" {
		return ErrInvalidQuestion
	}
	for _, option := range options {
		if option == answer {
			return nil
		}
	}
	return ErrInvalidQuestion
}
