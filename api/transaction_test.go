package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionIDs(list []models.Transaction) []string {
	ids := make([]string, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestTransactionHandler_List(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/transactions", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Transaction](t, w)
	assert.Equal(t, []string{"txn-2", "txn-3", "txn-1", "txn-5", "txn-4"}, transactionIDs(list))
	// 金额原样返回
	assert.Equal(t, "45.50", list[0].Amount)
}

func TestTransactionHandler_List_DateRange(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/transactions?startDate=2025-08-05&endDate=2025-08-18", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Transaction](t, w)
	assert.Equal(t, []string{"txn-3", "txn-1", "txn-5"}, transactionIDs(list))
}

func TestTransactionHandler_List_RFC3339Range(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/transactions?startDate=2025-08-15T00:00:00Z&endDate=2025-08-19T23:59:59Z", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Transaction](t, w)
	assert.Equal(t, []string{"txn-3", "txn-1"}, transactionIDs(list))
}

func TestTransactionHandler_List_InvalidDate(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/transactions?startDate=08/05/2025&endDate=tomorrow", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, []string{"startDate", "endDate"}, fieldNames(resp.Details))
}

func TestTransactionHandler_Create(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/transactions",
		`{"amount":"12.30","description":"Coffee","categoryId":"cat-1","type":"expense","date":"2025-08-21"}`)

	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Transaction](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "12.30", created.Amount)
	assert.Equal(t, models.TransactionTypeExpense, created.Type)
	assert.Equal(t, models.DefaultUserID, created.UserID)
	assert.True(t, created.Date.Equal(time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)))

	list := decode[[]models.Transaction](t, perform(router, http.MethodGet, "/api/transactions", ""))
	require.Len(t, list, 6)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestTransactionHandler_Create_Invalid(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/transactions",
		`{"amount":"12.345","description":"Coffee","categoryId":"cat-1","type":"transfer","date":"21/08/2025"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "Invalid transaction data", resp.Error)
	assert.ElementsMatch(t, []string{"amount", "type", "date"}, fieldNames(resp.Details))
	for _, d := range resp.Details {
		if d.Field == "type" {
			assert.Equal(t, "oneof", d.Rule)
		}
	}

	list := decode[[]models.Transaction](t, perform(router, http.MethodGet, "/api/transactions", ""))
	assert.Len(t, list, 5)
}

func TestTransactionHandler_Create_AmountWrongType(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/transactions",
		`{"amount":12.5,"description":"Coffee","categoryId":"cat-1","type":"expense","date":"2025-08-21"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "amount", resp.Details[0].Field)
	assert.Equal(t, "type", resp.Details[0].Rule)
}

func TestTransactionHandler_Create_UnknownCategory(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/transactions",
		`{"amount":"10","description":"Mystery","categoryId":"cat-404","type":"expense","date":"2025-08-21"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, []string{"categoryId"}, fieldNames(resp.Details))

	list := decode[[]models.Transaction](t, perform(router, http.MethodGet, "/api/transactions", ""))
	assert.Len(t, list, 5)
}

func TestTransactionHandler_List_StoreError(t *testing.T) {
	st, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `transactions`").WillReturnError(errors.New("deadlock"))

	w := perform(newTestRouter(st), http.MethodGet, "/api/transactions", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch transactions", decode[ErrorResponse](t, w).Error)
	require.NoError(t, mock.ExpectationsWereMet())
}
