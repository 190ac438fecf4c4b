// Package store 定义记账数据的存取契约，并提供内存与关系型数据库两种实现。
package store

import (
	"context"
	"errors"
	"time"

	"fintrack/models"
)

var (
	// ErrNotFound 按ID查找的记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrCategoryNotFound 引用的类别不存在或不属于该用户
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateBudget 同一用户、类别、月份已存在预算
	ErrDuplicateBudget = errors.New("budget already exists for category and month")
	// ErrDuplicateUsername 用户名已被占用
	ErrDuplicateUsername = errors.New("username already exists")
)

// TransactionFilter 收支记录的日期筛选，边界均为闭区间，nil 表示不限
type TransactionFilter struct {
	Start *time.Time
	End   *time.Time
}

// Match 判断日期是否落在筛选区间内
func (f TransactionFilter) Match(date time.Time) bool {
	if f.Start != nil && date.Before(*f.Start) {
		return false
	}
	if f.End != nil && date.After(*f.End) {
		return false
	}
	return true
}

// Store 记账数据存储
//
// ID 一律由存储层生成，调用方传入的 ID 会被忽略。
// GetTransactions 的结果按 Date 倒序排列。
type Store interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	GetCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, txn models.Transaction) (models.Transaction, error)

	GetBudgets(ctx context.Context, userID, month string) ([]models.Budget, error)
	CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) (models.Budget, error)
}
