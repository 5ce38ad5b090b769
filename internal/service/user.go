package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"event_quiz/internal/models"
	"event_quiz/internal/repository"
)

// UserWithScore 是帶有成績的用戶視圖，
// Score 為答對題數，每次查詢時重新計算
type UserWithScore struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	Score     int             `json:"score"`
}

type UserService struct {
	userRepo   repository.UserRepository
	answerRepo repository.AnswerRepository
}

func NewUserService(userRepo repository.UserRepository, answerRepo repository.AnswerRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		answerRepo: answerRepo,
	}
}

// CreateUser 建立新用戶，密碼以 bcrypt 雜湊後存放
func (s *UserService) CreateUser(name, password string, role models.UserRole) (*models.User, error) {
	count, err := s.userRepo.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByName(name string) (*models.User, error) {
	user, err := s.userRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UsersWithScores 列出所有用戶並附上各自的成績。
// 成績以單一分組聚合查詢一次算完，而不是每位用戶各查一次。
func (s *UserService) UsersWithScores() ([]UserWithScore, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	counts, err := s.answerRepo.CorrectCountsByUser()
	if err != nil {
		return nil, err
	}

	scored := make([]UserWithScore, 0, len(users))
	for _, user := range users {
		scored = append(scored, UserWithScore{
			ID:        user.ID,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			Score:     counts[user.ID],
		})
	}
	return scored, nil
}

// UpdateUser 修改用戶名稱，password 為空字串時保留原密碼
func (s *UserService) UpdateUser(id uint, name, password string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 刪除用戶，作答紀錄隨之刪除，
// 該用戶名下的抽獎結果改為從缺（由資料庫外鍵處理）
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}
