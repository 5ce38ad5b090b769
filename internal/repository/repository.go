package repository

import "event_quiz/internal/storage"

type Repositories struct {
	User       UserRepository
	Question   QuestionRepository
	Answer     AnswerRepository
	DrawResult DrawResultRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Question:   NewQuestionRepository(db),
		Answer:     NewAnswerRepository(db),
		DrawResult: NewDrawResultRepository(db),
	}
}
