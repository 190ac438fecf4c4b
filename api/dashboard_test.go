package api

import (
	"errors"
	"net/http"
	"testing"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Summary(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/summary?month=2025-08", "")

	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.DashboardSummary](t, w)
	assert.Equal(t, "2025-08", summary.Month)
	assert.Equal(t, "2500.00", summary.Income.StringFixed(2))
	assert.Equal(t, "276.89", summary.Expenses.StringFixed(2))
	assert.Equal(t, "2223.11", summary.NetSavings.StringFixed(2))
	assert.Equal(t, 5, summary.TransactionCount)

	require.Len(t, summary.BudgetProgress, 3)
	food := summary.BudgetProgress[0]
	assert.Equal(t, "cat-1", food.CategoryID)
	assert.Equal(t, "Food & Dining", food.CategoryName)
	assert.Equal(t, "45.50", food.Spent.StringFixed(2))
	assert.Equal(t, "254.50", food.Remaining.StringFixed(2))
	assert.Equal(t, "15.17", food.Percentage.StringFixed(2))
}

func TestDashboardHandler_Summary_DefaultMonth(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/summary", "")

	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.DashboardSummary](t, w)
	assert.Equal(t, fixedNow.Format("2006-01"), summary.Month)
	assert.Equal(t, 5, summary.TransactionCount)
}

func TestDashboardHandler_Summary_InvalidMonth(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/summary?month=2025-8", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"month"}, fieldNames(decode[ErrorResponse](t, w).Details))
}

func TestDashboardHandler_Summary_StoreError(t *testing.T) {
	st, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `transactions`").WillReturnError(errors.New("too many connections"))

	w := perform(newTestRouter(st), http.MethodGet, "/api/dashboard/summary?month=2025-08", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch dashboard data", decode[ErrorResponse](t, w).Error)
	assert.NotContains(t, w.Body.String(), "too many connections")
}

func TestDashboardHandler_Categories(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/categories?month=2025-08", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.CategoryTotal](t, w)
	require.Len(t, list, 4)
	assert.Equal(t, "cat-1", list[0].CategoryID)
	assert.Equal(t, "45.50", list[0].Total.StringFixed(2))
	assert.Equal(t, 1, list[0].Count)
	assert.Equal(t, "cat-2", list[1].CategoryID)
	assert.Equal(t, "120.00", list[1].Total.StringFixed(2))
}

func TestDashboardHandler_Trends(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/trends?endDate=2025-08-20&days=3", "")

	require.Equal(t, http.StatusOK, w.Code)
	series := decode[[]models.DailyTotal](t, w)
	require.Len(t, series, 3)
	assert.Equal(t, "2025-08-18", series[0].Date)
	assert.Equal(t, "120.00", series[0].Expenses.StringFixed(2))
	assert.True(t, series[1].Expenses.IsZero())
	assert.Equal(t, "2025-08-20", series[2].Date)
	assert.Equal(t, "45.50", series[2].Expenses.StringFixed(2))
}

func TestDashboardHandler_Trends_Defaults(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/dashboard/trends", "")

	require.Equal(t, http.StatusOK, w.Code)
	series := decode[[]models.DailyTotal](t, w)
	require.Len(t, series, 7)
	assert.Equal(t, "2025-08-20", series[6].Date)
}

func TestDashboardHandler_Trends_InvalidQuery(t *testing.T) {
	router := newTestRouter(newSeededStore())

	for _, query := range []string{"days=0", "days=abc", "days=367", "endDate=yesterday"} {
		w := perform(router, http.MethodGet, "/api/dashboard/trends?"+query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
