package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/models"
	"fintrack/service"
	"fintrack/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fixedNow 种子数据所在月份中的某一天
var fixedNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func newSeededStore() *store.MemoryStore {
	st := store.NewMemoryStore()
	st.Load(store.DefaultSeedData())
	return st
}

// setupMockDB 基于 sqlmock 的 GormStore，用于验证存储故障路径
func setupMockDB(t *testing.T) (*store.GormStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return store.NewGormStore(gormDB), mock
}

// newTestRouter 按生产路由挂载全部处理器，不启用限流
func newTestRouter(st store.Store) *gin.Engine {
	userID := models.DefaultUserID
	dashboard := service.NewDashboardService(st).WithClock(func() time.Time { return fixedNow })
	exporter := service.NewExportService(st)

	r := gin.New()
	g := r.Group("/api")

	categories := NewCategoryHandler(st, userID)
	g.GET("/categories", categories.List)
	g.POST("/categories", categories.Create)

	transactions := NewTransactionHandler(st, userID)
	g.GET("/transactions", transactions.List)
	g.POST("/transactions", transactions.Create)

	budgets := NewBudgetHandler(st, userID)
	g.GET("/budgets", budgets.List)
	g.POST("/budgets", budgets.Create)
	g.PUT("/budgets/:id", budgets.Update)

	dash := NewDashboardHandler(dashboard, userID)
	g.GET("/dashboard/summary", dash.Summary)
	g.GET("/dashboard/categories", dash.Categories)
	g.GET("/dashboard/trends", dash.Trends)

	export := NewExportHandler(exporter, userID)
	g.GET("/export/csv", export.ExportCSV)
	g.GET("/export/excel", export.ExportExcel)
	g.GET("/export/json", export.ExportJSON)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}
