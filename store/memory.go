package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"fintrack/models"

	"github.com/google/uuid"
)

// MemoryStore 基于内存的存储实现
// 读操作持有读锁，写操作持有写锁，每次写入都是原子的
type MemoryStore struct {
	mu sync.RWMutex

	users        map[string]models.User
	categories   map[string]models.Category
	transactions map[string]models.Transaction
	budgets      map[string]models.Budget

	// 记录插入顺序，列表查询按此顺序返回
	categoryOrder    []string
	transactionOrder []string
	budgetOrder      []string

	newID func() string
	now   func() time.Time
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		categories:   make(map[string]models.Category),
		transactions: make(map[string]models.Transaction),
		budgets:      make(map[string]models.Budget),
		newID:        uuid.NewString,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Load 按原 ID 写入初始化数据，已存在的 ID 会被覆盖
func (s *MemoryStore) Load(data SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range data.Users {
		s.users[u.ID] = u
	}
	for _, c := range data.Categories {
		if _, ok := s.categories[c.ID]; !ok {
			s.categoryOrder = append(s.categoryOrder, c.ID)
		}
		s.categories[c.ID] = c
	}
	for _, t := range data.Transactions {
		if _, ok := s.transactions[t.ID]; !ok {
			s.transactionOrder = append(s.transactionOrder, t.ID)
		}
		t.Date = t.Date.UTC()
		s.transactions[t.ID] = t
	}
	for _, b := range data.Budgets {
		if _, ok := s.budgets[b.ID]; !ok {
			s.budgetOrder = append(s.budgetOrder, b.ID)
		}
		s.budgets[b.ID] = b
	}
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	user.ID = s.newID()
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) GetCategories(_ context.Context, userID string) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Category, 0)
	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.UserID == userID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) CreateCategory(_ context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.newID()
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)
	return category, nil
}

func (s *MemoryStore) GetTransactions(_ context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Transaction, 0)
	for _, id := range s.transactionOrder {
		t := s.transactions[id]
		if t.UserID != userID || !filter.Match(t.Date) {
			continue
		}
		list = append(list, t)
	}
	// 日期相同的记录保持插入顺序
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}

func (s *MemoryStore) CreateTransaction(_ context.Context, txn models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ownsCategory(txn.UserID, txn.CategoryID) {
		return models.Transaction{}, ErrCategoryNotFound
	}

	txn.ID = s.newID()
	txn.Date = txn.Date.UTC()
	txn.CreatedAt = s.now()
	s.transactions[txn.ID] = txn
	s.transactionOrder = append(s.transactionOrder, txn.ID)
	return txn, nil
}

func (s *MemoryStore) GetBudgets(_ context.Context, userID, month string) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Budget, 0)
	for _, id := range s.budgetOrder {
		b := s.budgets[id]
		if b.UserID != userID {
			continue
		}
		if month != "" && b.Month != month {
			continue
		}
		list = append(list, b)
	}
	return list, nil
}

func (s *MemoryStore) CreateBudget(_ context.Context, budget models.Budget) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ownsCategory(budget.UserID, budget.CategoryID) {
		return models.Budget{}, ErrCategoryNotFound
	}
	if s.budgetExists(budget, "") {
		return models.Budget{}, ErrDuplicateBudget
	}

	budget.ID = s.newID()
	s.budgets[budget.ID] = budget
	s.budgetOrder = append(s.budgetOrder, budget.ID)
	return budget, nil
}

func (s *MemoryStore) UpdateBudget(_ context.Context, id string, patch models.BudgetPatch) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.budgets[id]
	if !ok {
		return models.Budget{}, ErrNotFound
	}

	updated := patch.Apply(current)
	if patch.CategoryID != nil && !s.ownsCategory(updated.UserID, updated.CategoryID) {
		return models.Budget{}, ErrCategoryNotFound
	}
	if (patch.CategoryID != nil || patch.Month != nil) && s.budgetExists(updated, id) {
		return models.Budget{}, ErrDuplicateBudget
	}

	s.budgets[id] = updated
	return updated, nil
}

// ownsCategory 调用方需持有锁
func (s *MemoryStore) ownsCategory(userID, categoryID string) bool {
	c, ok := s.categories[categoryID]
	return ok && c.UserID == userID
}

// budgetExists 是否已有相同用户、类别、月份的预算（排除 exceptID），调用方需持有锁
func (s *MemoryStore) budgetExists(b models.Budget, exceptID string) bool {
	for id, existing := range s.budgets {
		if id == exceptID {
			continue
		}
		if existing.UserID == b.UserID && existing.CategoryID == b.CategoryID && existing.Month == b.Month {
			return true
		}
	}
	return false
}
