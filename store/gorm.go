package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore 基于 gorm 的关系型数据库存储实现
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore 使用已初始化的数据库连接创建存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// AutoMigrate 自动迁移数据库表
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
	)
}

// Seed 写入初始化数据（仅当用户表为空时）
func (s *GormStore) Seed(ctx context.Context, data SeedData) (bool, error) {
	var userCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(data.Categories) > 0 {
			categories := make([]models.Category, len(data.Categories))
			for i, c := range data.Categories {
				c.Seq = int64(i + 1)
				categories[i] = c
			}
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("seed categories: %w", err)
			}
		}
		if len(data.Transactions) > 0 {
			txns := make([]models.Transaction, len(data.Transactions))
			for i, t := range data.Transactions {
				t.Date = t.Date.UTC()
				t.CreatedAt = t.CreatedAt.UTC()
				txns[i] = t
			}
			if err := tx.Create(&txns).Error; err != nil {
				return fmt.Errorf("seed transactions: %w", err)
			}
		}
		if len(data.Budgets) > 0 {
			budgets := make([]models.Budget, len(data.Budgets))
			for i, b := range data.Budgets {
				b.Seq = int64(i + 1)
				budgets[i] = b
			}
			if err := tx.Create(&budgets).Error; err != nil {
				return fmt.Errorf("seed budgets: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) GetCategories(ctx context.Context, userID string) ([]models.Category, error) {
	list := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("seq ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return list, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return models.Category{}, notFound(err)
	}
	return category, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Category{})
		if err != nil {
			return err
		}
		category.Seq = seq
		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *GormStore) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	query := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.Start != nil {
		query = query.Where("date >= ?", filter.Start.UTC())
	}
	if filter.End != nil {
		query = query.Where("date <= ?", filter.End.UTC())
	}

	list := make([]models.Transaction, 0)
	if err := query.Order("date DESC, created_at ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	for i := range list {
		list[i].Date = list[i].Date.UTC()
		list[i].CreatedAt = list[i].CreatedAt.UTC()
	}
	return list, nil
}

func (s *GormStore) CreateTransaction(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	txn.ID = uuid.NewString()
	txn.Date = txn.Date.UTC()
	txn.CreatedAt = s.now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCategory(tx, txn.UserID, txn.CategoryID); err != nil {
			return err
		}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func (s *GormStore) GetBudgets(ctx context.Context, userID, month string) ([]models.Budget, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if month != "" {
		query = query.Where("month = ?", month)
	}

	list := make([]models.Budget, 0)
	if err := query.Order("seq ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	return list, nil
}

func (s *GormStore) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	budget.ID = uuid.NewString()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCategory(tx, budget.UserID, budget.CategoryID); err != nil {
			return err
		}
		if err := checkBudgetUnique(tx, budget, ""); err != nil {
			return err
		}
		seq, err := nextSeq(tx, &models.Budget{})
		if err != nil {
			return err
		}
		budget.Seq = seq
		return tx.Create(&budget).Error
	})
	if err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (s *GormStore) UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) (models.Budget, error) {
	var updated models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Budget
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return notFound(err)
		}

		updated = patch.Apply(current)
		if patch.Empty() {
			return nil
		}
		if patch.CategoryID != nil {
			if err := checkCategory(tx, updated.UserID, updated.CategoryID); err != nil {
				return err
			}
		}
		if patch.CategoryID != nil || patch.Month != nil {
			if err := checkBudgetUnique(tx, updated, id); err != nil {
				return err
			}
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		return models.Budget{}, err
	}
	return updated, nil
}

func checkCategory(tx *gorm.DB, userID, categoryID string) error {
	var n int64
	if err := tx.Model(&models.Category{}).Where("id = ? AND user_id = ?", categoryID, userID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func checkBudgetUnique(tx *gorm.DB, b models.Budget, exceptID string) error {
	query := tx.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ?", b.UserID, b.CategoryID, b.Month)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateBudget
	}
	return nil
}

// nextSeq 取表中下一个插入序号，需在写入事务内调用
func nextSeq(tx *gorm.DB, model interface{}) (int64, error) {
	var last int64
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
		return 0, err
	}
	return last + 1, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
