package models

import (
	"time"
)

// TransactionType 收支类型
type TransactionType string

const (
	// TransactionTypeIncome 收入
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense 支出
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction 收支记录模型
// Amount 始终为非负的两位小数字符串，正负由 Type 表达
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;size:64"`
	Amount      string          `json:"amount" gorm:"size:32;not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	CategoryID  string          `json:"categoryId" gorm:"index;size:64;not null"`
	Type        TransactionType `json:"type" gorm:"size:16;not null"`
	Date        time.Time       `json:"date" gorm:"index;not null"` // 实际发生日期
	UserID      string          `json:"userId" gorm:"index;size:64;not null"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsIncome 是否为收入
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense 是否为支出
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
