package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/logger"
	"gorm.io/gorm"

	"event_quiz/internal/models"
	"event_quiz/internal/repository"
)

// Participant 是一位具抽獎資格的用戶及其目前成績
type Participant struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PickWinner 依成績加權隨機抽出一位得獎者
//
// 每位參加者在抽獎池中佔 score+1 個名額，因此零分的參加者
// 也保有中獎機會，不會被永久排除。抽中機率為
// (score+1) / Σ(score+1)。參加者清單為空時不進行抽獎。
func PickWinner(participants []Participant) (*Participant, bool) {
	if len(participants) == 0 {
		return nil, false
	}

	var pool []int
	for i, p := range participants {
		for n := 0; n < p.Score+1; n++ {
			pool = append(pool, i)
		}
	}

	winner := participants[pool[rand.Intn(len(pool))]]
	return &winner, true
}

// DrawService 負責抽獎與抽獎結果的管理
type DrawService struct {
	resultRepo  repository.DrawResultRepository
	userRepo    repository.UserRepository
	userService *UserService
}

func NewDrawService(resultRepo repository.DrawResultRepository, userRepo repository.UserRepository, userService *UserService) *DrawService {
	return &DrawService{
		resultRepo:  resultRepo,
		userRepo:    userRepo,
		userService: userService,
	}
}

// PerformDraw 在伺服器端執行一次完整抽獎：
// 取得目前所有用戶與成績、加權抽出得獎者並寫入抽獎結果。
// 沒有任何參加者時不寫入任何紀錄，回傳 (nil, nil)。
func (s *DrawService) PerformDraw() (*models.DrawResult, error) {
	scored, err := s.userService.UsersWithScores()
	if err != nil {
		return nil, err
	}

	participants := make([]Participant, 0, len(scored))
	for _, u := range scored {
		participants = append(participants, Participant{ID: u.ID, Name: u.Name, Score: u.Score})
	}

	winner, ok := PickWinner(participants)
	if !ok {
		logger.Info("抽獎取消：目前沒有任何參加者")
		return nil, nil
	}

	result, err := s.CreateResult(&winner.ID)
	if err != nil {
		return nil, err
	}

	logger.Infof("抽獎完成：得獎者 %s (id=%d, score=%d)", winner.Name, winner.ID, winner.Score)
	return result, nil
}

// CreateResult 建立一筆抽獎結果，winnerID 可為 nil（尚未抽出）。
// 有指定得獎者時必須是存在的用戶。
func (s *DrawService) CreateResult(winnerID *uint) (*models.DrawResult, error) {
	if winnerID != nil {
		if _, err := s.userRepo.FindByID(*winnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWinnerNotFound
			}
			return nil, err
		}
	}

	result := &models.DrawResult{
		DrawTime: time.Now(),
		WinnerID: winnerID,
		IsDrawn:  winnerID != nil,
	}
	if err := s.resultRepo.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateResult 覆寫一筆抽獎結果的得獎者與 isDrawn 旗標。
// winnerID 為 nil 時直接寫入 NULL 而不是保留原值，
// 讓管理員可以把已開出的結果作廢。
func (s *DrawService) UpdateResult(id uint, winnerID *uint, isDrawn bool) (*models.DrawResult, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	if winnerID != nil {
		if _, err := s.userRepo.FindByID(*winnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWinnerNotFound
			}
			return nil, err
		}
	}

	result.WinnerID = winnerID
	result.IsDrawn = isDrawn
	if err := s.resultRepo.Update(result); err != nil {
		return nil, err
	}

	if result.State() == models.DrawStateNotDrawn {
		logger.Infof("抽獎結果 %d 已被作廢", id)
	}
	return result, nil
}

// Results 查詢所有抽獎結果，由新到舊排序
func (s *DrawService) Results() ([]models.DrawResult, error) {
	return s.resultRepo.FindAll()
}

func (s *DrawService) DeleteResult(id uint) error {
	return s.resultRepo.Delete(id)
}
