package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 汇总金额以 JSON 数字输出，与前端图表直接对接
	decimal.MarshalJSONWithoutQuotes = true
}

// BudgetProgress 单条预算的执行进度
type BudgetProgress struct {
	Budget
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`  // 可能为负，表示超支
	Percentage    decimal.Decimal `json:"percentage"` // 可能超过 100
}

// DashboardSummary 仪表盘月度汇总
type DashboardSummary struct {
	Month            string           `json:"month"`
	Income           decimal.Decimal  `json:"income"`
	Expenses         decimal.Decimal  `json:"expenses"`
	NetSavings       decimal.Decimal  `json:"netSavings"`
	BudgetProgress   []BudgetProgress `json:"budgetProgress"`
	TransactionCount int              `json:"transactionCount"`
}

// CategoryTotal 按类别汇总的支出
type CategoryTotal struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // 占总支出的百分比
}

// DailyTotal 单日收支
type DailyTotal struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
