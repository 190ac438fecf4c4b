package models

// DefaultUserID 种子数据中的默认用户ID，未登录体系下所有请求均归属该用户
const DefaultUserID = "default-user-id"

// User 用户模型
type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:64"`
	Username string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // 按原样保存，当前版本不做哈希
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
