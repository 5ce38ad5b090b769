package service

import (
	"io"
	"os"
	"testing"

	"github.com/google/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event_quiz/internal/models"
)

func TestMain(m *testing.M) {
	lg := logger.Init("test", false, false, io.Discard)
	code := m.Run()
	lg.Close()
	os.Exit(code)
}

func TestPickWinner(t *testing.T) {
	t.Run("空名單不進行抽獎", func(t *testing.T) {
		winner, ok := PickWinner(nil)
		assert.False(t, ok)
		assert.Nil(t, winner)
	})

	t.Run("只有一位參加者必定中獎", func(t *testing.T) {
		winner, ok := PickWinner([]Participant{{ID: 7, Name: "Alice", Score: 0}})
		require.True(t, ok)
		assert.Equal(t, uint(7), winner.ID)
	})

	t.Run("中獎機率與 score+1 成正比", func(t *testing.T) {
		participants := []Participant{
			{ID: 1, Name: "Alice", Score: 0},
			{ID: 2, Name: "Bob", Score: 0},
			{ID: 3, Name: "Carol", Score: 3},
		}

		const trials = 100000
		counts := make(map[uint]int)
		for i := 0; i < trials; i++ {
			winner, ok := PickWinner(participants)
			require.True(t, ok)
			counts[winner.ID]++
		}

		// 權重為 1:1:4，期望頻率 1/6、1/6、4/6
		assert.InDelta(t, 1.0/6.0, float64(counts[1])/trials, 0.01)
		assert.InDelta(t, 1.0/6.0, float64(counts[2])/trials, 0.01)
		assert.InDelta(t, 4.0/6.0, float64(counts[3])/trials, 0.01)
	})
}

func newDrawServiceForTest(userRepo *fakeUserRepo, answerRepo *fakeAnswerRepo, resultRepo *fakeDrawResultRepo) *DrawService {
	userService := NewUserService(userRepo, answerRepo)
	return NewDrawService(resultRepo, userRepo, userService)
}

func TestDrawService_PerformDraw(t *testing.T) {
	t.Run("沒有參加者時不寫入任何紀錄", func(t *testing.T) {
		resultRepo := newFakeDrawResultRepo()
		svc := newDrawServiceForTest(newFakeUserRepo(), newFakeAnswerRepo(), resultRepo)

		result, err := svc.PerformDraw()
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Empty(t, resultRepo.results)
	})

	t.Run("抽出得獎者並寫入結果", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		require.NoError(t, userRepo.Create(&models.User{Name: "Alice", Password: "x", Role: models.RoleUser}))

		resultRepo := newFakeDrawResultRepo()
		svc := newDrawServiceForTest(userRepo, newFakeAnswerRepo(), resultRepo)

		result, err := svc.PerformDraw()
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.WinnerID)
		assert.Equal(t, uint(1), *result.WinnerID)
		assert.True(t, result.IsDrawn)
		assert.Equal(t, models.DrawStateDrawnWithWinner, result.State())
		assert.Len(t, resultRepo.results, 1)
	})
}

func TestDrawService_CreateResult(t *testing.T) {
	t.Run("未指定得獎者時建立未開獎紀錄", func(t *testing.T) {
		svc := newDrawServiceForTest(newFakeUserRepo(), newFakeAnswerRepo(), newFakeDrawResultRepo())

		result, err := svc.CreateResult(nil)
		require.NoError(t, err)
		assert.Nil(t, result.WinnerID)
		assert.False(t, result.IsDrawn)
		assert.Equal(t, models.DrawStateNotDrawn, result.State())
		assert.False(t, result.DrawTime.IsZero())
	})

	t.Run("得獎者不存在時拒絕建立", func(t *testing.T) {
		svc := newDrawServiceForTest(newFakeUserRepo(), newFakeAnswerRepo(), newFakeDrawResultRepo())

		missing := uint(42)
		_, err := svc.CreateResult(&missing)
		assert.ErrorIs(t, err, ErrWinnerNotFound)
	})
}

func TestDrawService_UpdateResult(t *testing.T) {
	t.Run("winnerId 為空時覆寫為從缺而非保留原值", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		require.NoError(t, userRepo.Create(&models.User{Name: "Alice", Password: "x", Role: models.RoleUser}))

		resultRepo := newFakeDrawResultRepo()
		svc := newDrawServiceForTest(userRepo, newFakeAnswerRepo(), resultRepo)

		winnerID := uint(1)
		created, err := svc.CreateResult(&winnerID)
		require.NoError(t, err)

		updated, err := svc.UpdateResult(created.ID, nil, false)
		require.NoError(t, err)
		assert.Nil(t, updated.WinnerID)
		assert.False(t, updated.IsDrawn)

		stored, err := resultRepo.FindByID(created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.WinnerID)
		assert.False(t, stored.IsDrawn)
	})

	t.Run("改派的得獎者必須存在", func(t *testing.T) {
		svc := newDrawServiceForTest(newFakeUserRepo(), newFakeAnswerRepo(), newFakeDrawResultRepo())

		created, err := svc.CreateResult(nil)
		require.NoError(t, err)

		missing := uint(99)
		_, err = svc.UpdateResult(created.ID, &missing, true)
		assert.ErrorIs(t, err, ErrWinnerNotFound)
	})

	t.Run("不存在的紀錄回報找不到", func(t *testing.T) {
		svc := newDrawServiceForTest(newFakeUserRepo(), newFakeAnswerRepo(), newFakeDrawResultRepo())

		_, err := svc.UpdateResult(123, nil, false)
		assert.ErrorIs(t, err, ErrResultNotFound)
	})
}
