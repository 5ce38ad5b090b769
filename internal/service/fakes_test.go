package service

import (
	"sort"

	"gorm.io/gorm"

	"event_quiz/internal/models"
)

// 測試用的記憶體 repository，實作與正式版相同的介面

type fakeUserRepo struct {
	users  []models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByName(name string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Name == name {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	return append([]models.User(nil), r.users...), nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id uint) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) CountByName(name string) (int64, error) {
	var count int64
	for i := range r.users {
		if r.users[i].Name == name {
			count++
		}
	}
	return count, nil
}

type fakeQuestionRepo struct {
	questions []models.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{nextID: 1}
}

func (r *fakeQuestionRepo) Create(question *models.Question) error {
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*models.Question, error) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			question := r.questions[i]
			return &question, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindAll() ([]models.Question, error) {
	return append([]models.Question(nil), r.questions...), nil
}

func (r *fakeQuestionRepo) FindExcluding(excludedIDs []uint) ([]models.Question, error) {
	excluded := make(map[uint]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}

	var remaining []models.Question
	for i := range r.questions {
		if !excluded[r.questions[i].ID] {
			remaining = append(remaining, r.questions[i])
		}
	}
	return remaining, nil
}

func (r *fakeQuestionRepo) Update(question *models.Question) error {
	for i := range r.questions {
		if r.questions[i].ID == question.ID {
			r.questions[i] = *question
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeQuestionRepo) Count() (int64, error) {
	return int64(len(r.questions)), nil
}

type fakeAnswerRepo struct {
	answers []models.Answer
	nextID  uint
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{nextID: 1}
}

func (r *fakeAnswerRepo) Create(answer *models.Answer) error {
	answer.ID = r.nextID
	r.nextID++
	r.answers = append(r.answers, *answer)
	return nil
}

func (r *fakeAnswerRepo) FindByUserID(userID uint) ([]models.Answer, error) {
	var found []models.Answer
	for i := range r.answers {
		if r.answers[i].UserID == userID {
			found = append(found, r.answers[i])
		}
	}
	return found, nil
}

func (r *fakeAnswerRepo) QuestionIDsByUserID(userID uint) ([]uint, error) {
	var ids []uint
	for i := range r.answers {
		if r.answers[i].UserID == userID {
			ids = append(ids, r.answers[i].QuestionID)
		}
	}
	return ids, nil
}

func (r *fakeAnswerRepo) ExistsByUserAndQuestion(userID, questionID uint) (bool, error) {
	for i := range r.answers {
		if r.answers[i].UserID == userID && r.answers[i].QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAnswerRepo) Delete(id uint) error {
	for i := range r.answers {
		if r.answers[i].ID == id {
			r.answers = append(r.answers[:i], r.answers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAnswerRepo) CorrectCountsByUser() (map[uint]int, error) {
	counts := make(map[uint]int)
	for i := range r.answers {
		if r.answers[i].Correct {
			counts[r.answers[i].UserID]++
		}
	}
	return counts, nil
}

type fakeDrawResultRepo struct {
	results []models.DrawResult
	nextID  uint
}

func newFakeDrawResultRepo() *fakeDrawResultRepo {
	return &fakeDrawResultRepo{nextID: 1}
}

func (r *fakeDrawResultRepo) Create(result *models.DrawResult) error {
	result.ID = r.nextID
	r.nextID++
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeDrawResultRepo) FindByID(id uint) (*models.DrawResult, error) {
	for i := range r.results {
		if r.results[i].ID == id {
			result := r.results[i]
			return &result, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDrawResultRepo) FindAll() ([]models.DrawResult, error) {
	results := append([]models.DrawResult(nil), r.results...)
	sort.Slice(results, func(i, j int) bool {
		return results[i].DrawTime.After(results[j].DrawTime)
	})
	return results, nil
}

func (r *fakeDrawResultRepo) Update(result *models.DrawResult) error {
	for i := range r.results {
		if r.results[i].ID == result.ID {
			r.results[i].WinnerID = result.WinnerID
			r.results[i].IsDrawn = result.IsDrawn
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeDrawResultRepo) Delete(id uint) error {
	for i := range r.results {
		if r.results[i].ID == id {
			r.results = append(r.results[:i], r.results[i+1:]...)
			return nil
		}
	}
	return nil
}
