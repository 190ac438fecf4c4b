package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/models"
	"fintrack/store"

	"github.com/shopspring/decimal"
)

const (
	// MonthLayout 月份格式 YYYY-MM
	MonthLayout = "2006-01"
	// DateLayout 日期格式 YYYY-MM-DD
	DateLayout = "2006-01-02"

	// DefaultTrendDays 趋势默认天数
	DefaultTrendDays = 7
	// MaxTrendDays 趋势最大天数
	MaxTrendDays = 366
)

var hundred = decimal.NewFromInt(100)

// LedgerReader 汇总计算所需的只读数据源
type LedgerReader interface {
	GetCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetTransactions(ctx context.Context, userID string, filter store.TransactionFilter) ([]models.Transaction, error)
	GetBudgets(ctx context.Context, userID, month string) ([]models.Budget, error)
}

// DashboardService 仪表盘汇总计算
// 所有方法都是存储当前状态的纯函数，不产生副作用
type DashboardService struct {
	reader LedgerReader
	now    func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(reader LedgerReader) *DashboardService {
	return &DashboardService{
		reader: reader,
		now:    time.Now,
	}
}

// WithClock 替换时钟，用于确定"当前月份"和"今天"
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// CurrentMonth 当前月份（UTC）
func (s *DashboardService) CurrentMonth() string {
	return s.now().UTC().Format(MonthLayout)
}

// MonthRange 返回月份的第一天零点与最后一天的最后时刻（UTC）
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// ParseAmount 解析金额字符串
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d, nil
}

// Summary 计算指定用户某月的收支汇总与预算进度，month 为空时取当前月份
func (s *DashboardService) Summary(ctx context.Context, userID, month string) (models.DashboardSummary, error) {
	if month == "" {
		month = s.CurrentMonth()
	}
	start, end, err := MonthRange(month)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	txns, err := s.reader.GetTransactions(ctx, userID, store.TransactionFilter{Start: &start, End: &end})
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("load transactions: %w", err)
	}

	income, expenses := decimal.Zero, decimal.Zero
	spentByCategory := make(map[string]decimal.Decimal)
	for _, t := range txns {
		amount, err := ParseAmount(t.Amount)
		if err != nil {
			return models.DashboardSummary{}, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(amount)
			spentByCategory[t.CategoryID] = spentByCategory[t.CategoryID].Add(amount)
		}
	}

	budgets, err := s.reader.GetBudgets(ctx, userID, month)
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("load budgets: %w", err)
	}
	categories, err := s.reader.GetCategories(ctx, userID)
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("load categories: %w", err)
	}
	byID := indexCategories(categories)

	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		amount, err := ParseAmount(b.Amount)
		if err != nil {
			return models.DashboardSummary{}, fmt.Errorf("budget %s: %w", b.ID, err)
		}
		spent := spentByCategory[b.CategoryID]

		p := models.BudgetProgress{
			Budget:        b,
			CategoryName:  models.UnknownCategoryName,
			CategoryColor: models.DefaultCategoryColor,
			Spent:         spent,
			Remaining:     amount.Sub(spent),
			Percentage:    percentOf(spent, amount),
		}
		if c, ok := byID[b.CategoryID]; ok {
			p.CategoryName = c.Name
			p.CategoryColor = c.Color
		}
		progress = append(progress, p)
	}

	return models.DashboardSummary{
		Month:            month,
		Income:           income,
		Expenses:         expenses,
		NetSavings:       income.Sub(expenses),
		BudgetProgress:   progress,
		TransactionCount: len(txns),
	}, nil
}

// CategoryBreakdown 按类别统计支出及其占总支出的比例
// month 为空时统计全部时间；只返回支出大于 0 的类别，顺序与类别列表一致
func (s *DashboardService) CategoryBreakdown(ctx context.Context, userID, month string) ([]models.CategoryTotal, error) {
	var filter store.TransactionFilter
	if month != "" {
		start, end, err := MonthRange(month)
		if err != nil {
			return nil, err
		}
		filter = store.TransactionFilter{Start: &start, End: &end}
	}

	txns, err := s.reader.GetTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	categories, err := s.reader.GetCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		amount, err := ParseAmount(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(amount)
		counts[t.CategoryID]++
	}

	list := make([]models.CategoryTotal, 0)
	grand := decimal.Zero
	for _, c := range categories {
		total := totals[c.ID]
		if !total.IsPositive() {
			continue
		}
		grand = grand.Add(total)
		list = append(list, models.CategoryTotal{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Total:      total,
			Count:      counts[c.ID],
		})
	}
	for i := range list {
		list[i].Percentage = percentOf(list[i].Total, grand)
	}
	return list, nil
}

// Trends 统计截至 endDate（含）的连续 days 天每日收支，按日期升序
// endDate 为零值时取今天（UTC），days 不在 1..MaxTrendDays 时取默认值
func (s *DashboardService) Trends(ctx context.Context, userID string, endDate time.Time, days int) ([]models.DailyTotal, error) {
	if endDate.IsZero() {
		endDate = s.now()
	}
	if days <= 0 || days > MaxTrendDays {
		days = DefaultTrendDays
	}
	endDay := endDate.UTC().Truncate(24 * time.Hour)
	startDay := endDay.AddDate(0, 0, -(days - 1))
	rangeEnd := endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	txns, err := s.reader.GetTransactions(ctx, userID, store.TransactionFilter{Start: &startDay, End: &rangeEnd})
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	series := make([]models.DailyTotal, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := startDay.AddDate(0, 0, i).Format(DateLayout)
		series[i] = models.DailyTotal{Date: key, Income: decimal.Zero, Expenses: decimal.Zero}
		index[key] = i
	}

	for _, t := range txns {
		i, ok := index[t.Date.UTC().Format(DateLayout)]
		if !ok {
			continue
		}
		amount, err := ParseAmount(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			series[i].Income = series[i].Income.Add(amount)
		case models.TransactionTypeExpense:
			series[i].Expenses = series[i].Expenses.Add(amount)
		}
	}
	return series, nil
}

// percentOf 计算 part/whole*100，whole 为 0 时返回 0
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

func indexCategories(categories []models.Category) map[string]models.Category {
	m := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}
