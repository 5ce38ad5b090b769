package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的用戶
type User struct {
	gorm.Model          // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string   `gorm:"uniqueIndex;not null" json:"name"` // 顯示名稱，必須唯一，同時作為登入帳號
	Password   string   `gorm:"not null" json:"-"`                // 密碼雜湊，json 序列化時會被忽略
	Role       UserRole `gorm:"not null;default:user" json:"role"`
	Answers    []Answer `gorm:"constraint:OnDelete:CASCADE" json:"-"` // 刪除用戶時一併刪除其作答紀錄
}

// UserRole 定義用戶角色的類型
type UserRole string

const (
	RoleUser       UserRole = "user"        // 一般參加者
	RoleAdmin      UserRole = "admin"       // 管理員
	RoleSuperAdmin UserRole = "super_admin" // 超級管理員，僅能管理題目
)
