package store

import (
	"time"

	"fintrack/models"
)

// SeedData 初始化数据
type SeedData struct {
	Users        []models.User
	Categories   []models.Category
	Transactions []models.Transaction
	Budgets      []models.Budget
}

func seedDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSeedData 默认用户、类别、示例收支和预算
func DefaultSeedData() SeedData {
	return DefaultSeedDataFor(models.DefaultUserID)
}

// DefaultSeedDataFor 与 DefaultSeedData 相同，但数据归属 uid
func DefaultSeedDataFor(uid string) SeedData {

	txn := func(id, amount, desc, categoryID string, typ models.TransactionType, date string) models.Transaction {
		d := seedDate(date)
		return models.Transaction{
			ID:          id,
			Amount:      amount,
			Description: desc,
			CategoryID:  categoryID,
			Type:        typ,
			Date:        d,
			UserID:      uid,
			CreatedAt:   d,
		}
	}

	return SeedData{
		Users: []models.User{
			{ID: uid, Username: "demo", Password: "demo123"},
		},
		Categories: []models.Category{
			{ID: "cat-1", Name: "Food & Dining", Icon: "fas fa-utensils", Color: "#FB923C", UserID: uid},
			{ID: "cat-2", Name: "Transportation", Icon: "fas fa-gas-pump", Color: "#3B82F6", UserID: uid},
			{ID: "cat-3", Name: "Entertainment", Icon: "fas fa-film", Color: "#8B5CF6", UserID: uid},
			{ID: "cat-4", Name: "Utilities", Icon: "fas fa-bolt", Color: "#10B981", UserID: uid},
			{ID: "cat-5", Name: "Shopping", Icon: "fas fa-shopping-bag", Color: "#EC4899", UserID: uid},
			{ID: "cat-6", Name: "Healthcare", Icon: "fas fa-heart", Color: "#F59E0B", UserID: uid},
			{ID: "cat-7", Name: "Income", Icon: "fas fa-briefcase", Color: "#10B981", UserID: uid},
		},
		Transactions: []models.Transaction{
			txn("txn-1", "2500.00", "Salary", "cat-7", models.TransactionTypeIncome, "2025-08-15"),
			txn("txn-2", "45.50", "Lunch at Italian Restaurant", "cat-1", models.TransactionTypeExpense, "2025-08-20"),
			txn("txn-3", "120.00", "Gas Station Fill-up", "cat-2", models.TransactionTypeExpense, "2025-08-18"),
			txn("txn-4", "25.99", "Netflix Subscription", "cat-3", models.TransactionTypeExpense, "2025-08-01"),
			txn("txn-5", "85.40", "Electricity Bill", "cat-4", models.TransactionTypeExpense, "2025-08-05"),
		},
		Budgets: []models.Budget{
			{ID: "budget-1", CategoryID: "cat-1", Amount: "300.00", Month: "2025-08", UserID: uid},
			{ID: "budget-2", CategoryID: "cat-2", Amount: "200.00", Month: "2025-08", UserID: uid},
			{ID: "budget-3", CategoryID: "cat-3", Amount: "100.00", Month: "2025-08", UserID: uid},
		},
	}
}
