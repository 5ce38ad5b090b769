package service

import "errors"

// service 層的錯誤分為兩類：下列可預期的業務錯誤，
// 由 handler 透過 errors.Is 對應到 4xx 狀態碼；
// 其他未列出的錯誤一律視為儲存層故障，對外回傳 500，不透露細節。
var (
	ErrQuestionNotFound   = errors.New("題目不存在")
	ErrUserNotFound       = errors.New("使用者不存在")
	ErrResultNotFound     = errors.New("抽獎紀錄不存在")
	ErrWinnerNotFound     = errors.New("得獎者不存在")
	ErrOptionNotInChoices = errors.New("所選答案不在題目的選項之中")
	ErrAlreadyAnswered    = errors.New("已經回答過這道題目")
	ErrInvalidQuestion    = errors.New("題目資料無效：需有題目文字、至少兩個選項，且正確答案必須是選項之一")
	ErrNameTaken          = errors.New("此名稱已被使用")
)
