package api

import (
	"errors"
	"net/http"
	"testing"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_List(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Category](t, w)
	require.Len(t, list, 7)
	assert.Equal(t, "cat-1", list[0].ID)
	assert.Equal(t, "Food & Dining", list[0].Name)
	assert.Equal(t, models.DefaultUserID, list[0].UserID)
}

func TestCategoryHandler_Create(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/categories",
		`{"name":"Travel","icon":"fas fa-plane","color":"#0EA5E9","userId":"someone-else"}`)

	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Category](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Travel", created.Name)
	// 用户由服务端指定
	assert.Equal(t, models.DefaultUserID, created.UserID)

	list := decode[[]models.Category](t, perform(router, http.MethodGet, "/api/categories", ""))
	assert.Len(t, list, 8)
}

func TestCategoryHandler_Create_Invalid(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/categories", `{"name":"Travel"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "Invalid category data", resp.Error)
	assert.ElementsMatch(t, []string{"icon", "color"}, fieldNames(resp.Details))

	list := decode[[]models.Category](t, perform(router, http.MethodGet, "/api/categories", ""))
	assert.Len(t, list, 7)
}

func TestCategoryHandler_Create_BlankName(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/categories", `{"name":"   ","icon":"x","color":"#fff"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, []string{"name"}, fieldNames(resp.Details))
}

func TestCategoryHandler_Create_MalformedJSON(t *testing.T) {
	router := newTestRouter(newSeededStore())

	w := perform(router, http.MethodPost, "/api/categories", `{"name":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "body", resp.Details[0].Field)
}

func TestCategoryHandler_List_StoreError(t *testing.T) {
	st, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnError(errors.New("dial tcp 10.0.0.1:3306: connection refused"))

	w := perform(newTestRouter(st), http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "Failed to fetch categories", resp.Error)
	// 内部错误信息不外泄
	assert.NotContains(t, w.Body.String(), "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}
