package models

// Budget 某类别的月度预算
// 同一用户、类别、月份只允许存在一条
type Budget struct {
	ID         string `json:"id" gorm:"primaryKey;size:64"`
	CategoryID string `json:"categoryId" gorm:"size:64;not null;uniqueIndex:idx_budget_period,priority:2"`
	Amount     string `json:"amount" gorm:"size:32;not null"`
	Month      string `json:"month" gorm:"size:7;not null;index;uniqueIndex:idx_budget_period,priority:3"` // YYYY-MM
	UserID     string `json:"userId" gorm:"size:64;not null;uniqueIndex:idx_budget_period,priority:1"`
	Seq        int64  `json:"-" gorm:"not null;default:0;index"` // 插入顺序，由存储层写入
}

func (Budget) TableName() string {
	return "budgets"
}

// BudgetPatch 预算的部分更新，nil 字段保持原值
type BudgetPatch struct {
	CategoryID *string
	Amount     *string
	Month      *string
}

// Apply 将非空字段合并到 b 上并返回结果
func (p BudgetPatch) Apply(b Budget) Budget {
	if p.CategoryID != nil {
		b.CategoryID = *p.CategoryID
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Month != nil {
		b.Month = *p.Month
	}
	return b
}

// Empty 是否没有任何需要更新的字段
func (p BudgetPatch) Empty() bool {
	return p.CategoryID == nil && p.Amount == nil && p.Month == nil
}
