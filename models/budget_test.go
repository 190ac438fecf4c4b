package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetPatch_Apply(t *testing.T) {
	base := Budget{ID: "budget-1", CategoryID: "cat-1", Amount: "300.00", Month: "2025-08", UserID: DefaultUserID}

	amount := "350.00"
	got := BudgetPatch{Amount: &amount}.Apply(base)
	assert.Equal(t, "350.00", got.Amount)
	assert.Equal(t, "cat-1", got.CategoryID)
	assert.Equal(t, "2025-08", got.Month)
	// 原值不受影响
	assert.Equal(t, "300.00", base.Amount)

	category, month := "cat-2", "2025-09"
	got = BudgetPatch{CategoryID: &category, Month: &month}.Apply(base)
	assert.Equal(t, "cat-2", got.CategoryID)
	assert.Equal(t, "2025-09", got.Month)
	assert.Equal(t, "300.00", got.Amount)
	assert.Equal(t, "budget-1", got.ID)
}

func TestBudgetPatch_Empty(t *testing.T) {
	assert.True(t, BudgetPatch{}.Empty())
	month := "2025-09"
	assert.False(t, BudgetPatch{Month: &month}.Empty())
}

func TestTransaction_Type(t *testing.T) {
	assert.True(t, Transaction{Type: TransactionTypeIncome}.IsIncome())
	assert.False(t, Transaction{Type: TransactionTypeIncome}.IsExpense())
	assert.True(t, Transaction{Type: TransactionTypeExpense}.IsExpense())
}
