package service

import (
	"event_quiz/internal/repository"
)

type Services struct {
	User *UserService
	Quiz *QuizService
	Draw *DrawService
}

func NewServices(repos *repository.Repositories) *Services {
	userService := NewUserService(repos.User, repos.Answer)
	quizService := NewQuizService(repos.Question, repos.Answer)
	drawService := NewDrawService(repos.DrawResult, repos.User, userService)
	return &Services{
		User: userService,
		Quiz: quizService,
		Draw: drawService,
	}
}
