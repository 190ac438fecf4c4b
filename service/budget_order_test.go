package service

import (
	"context"
	"testing"

	"fintrack/models"
	"fintrack/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func seededGormStore(t *testing.T) *store.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s := store.NewGormStore(db)
	require.NoError(t, s.AutoMigrate())
	_, err = s.Seed(context.Background(), store.DefaultSeedData())
	require.NoError(t, err)
	return s
}

func TestDashboardService_Summary_BudgetProgressOrder(t *testing.T) {
	backends := map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store { return seededStore() },
		"gorm":   func(t *testing.T) store.Store { return seededGormStore(t) },
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := open(t)

			order := []string{"cat-4", "cat-5", "cat-6", "cat-7", "cat-2"}
			for _, categoryID := range order {
				_, err := st.CreateBudget(ctx, models.Budget{
					CategoryID: categoryID,
					Amount:     "100.00",
					Month:      "2025-09",
					UserID:     models.DefaultUserID,
				})
				require.NoError(t, err)
			}

			summary, err := NewDashboardService(st).Summary(ctx, models.DefaultUserID, "2025-09")
			require.NoError(t, err)

			got := make([]string, 0, len(summary.BudgetProgress))
			for _, p := range summary.BudgetProgress {
				got = append(got, p.CategoryID)
			}
			assert.Equal(t, order, got)
		})
	}
}
