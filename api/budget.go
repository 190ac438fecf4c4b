package api

import (
	"errors"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 月度预算
type BudgetHandler struct {
	store  store.Store
	userID string
}

func NewBudgetHandler(st store.Store, userID string) *BudgetHandler {
	return &BudgetHandler{store: st, userID: userID}
}

type BudgetCreateRequest struct {
	CategoryID string `json:"categoryId" binding:"required" example:"cat-1"`
	Amount     string `json:"amount" binding:"required,positive_amount" example:"300.00"`
	Month      string `json:"month" binding:"required,yearmonth" example:"2025-08"`
}

// BudgetUpdateRequest 只更新传入的字段
type BudgetUpdateRequest struct {
	CategoryID *string `json:"categoryId" binding:"omitempty,min=1" example:"cat-2"`
	Amount     *string `json:"amount" binding:"omitempty,positive_amount" example:"250.00"`
	Month      *string `json:"month" binding:"omitempty,yearmonth" example:"2025-09"`
}

// List 列出预算
// @Summary 获取预算列表
// @Description 获取默认用户的预算，可按月份筛选
// @Tags 预算
// @Produce json
// @Param month query string false "月份 (2025-08)"
// @Success 200 {array} models.Budget "预算列表"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	month, fe := monthQuery(c)
	if fe != nil {
		ValidationFailed(c, "Invalid month", []FieldError{*fe})
		return
	}

	list, err := h.store.GetBudgets(c.Request.Context(), h.userID, month)
	if err != nil {
		InternalError(c, err, "Failed to fetch budgets")
		return
	}
	Success(c, list)
}

// Create 创建预算
// @Summary 创建预算
// @Description 为某类别设置月度预算，同一类别同一月份只能有一条
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetCreateRequest true "预算信息"
// @Success 200 {object} models.Budget "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误或类别不存在"
// @Failure 409 {object} ErrorResponse "该类别该月份已有预算"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	req := BindJSON[BudgetCreateRequest](c)
	if !req.OK() {
		ValidationFailed(c, "Invalid budget data", req.Errors)
		return
	}

	created, err := h.store.CreateBudget(c.Request.Context(), models.Budget{
		CategoryID: req.Value.CategoryID,
		Amount:     req.Value.Amount,
		Month:      req.Value.Month,
		UserID:     h.userID,
	})
	if err != nil {
		h.writeError(c, err, "Failed to create budget")
		return
	}
	Success(c, created)
}

// Update 部分更新预算
// @Summary 更新预算
// @Description 更新预算的金额、类别或月份，未传入的字段保持不变
// @Tags 预算
// @Accept json
// @Produce json
// @Param id path string true "预算ID"
// @Param request body BudgetUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.Budget "更新成功"
// @Failure 400 {object} ErrorResponse "参数错误或类别不存在"
// @Failure 404 {object} ErrorResponse "预算不存在"
// @Failure 409 {object} ErrorResponse "该类别该月份已有预算"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	req := BindJSON[BudgetUpdateRequest](c)
	if !req.OK() {
		ValidationFailed(c, "Invalid budget data", req.Errors)
		return
	}

	updated, err := h.store.UpdateBudget(c.Request.Context(), c.Param("id"), models.BudgetPatch{
		CategoryID: req.Value.CategoryID,
		Amount:     req.Value.Amount,
		Month:      req.Value.Month,
	})
	if err != nil {
		h.writeError(c, err, "Failed to update budget")
		return
	}
	Success(c, updated)
}

func (h *BudgetHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Budget not found")
	case errors.Is(err, store.ErrCategoryNotFound):
		ValidationFailed(c, "Invalid budget data", []FieldError{{
			Field:   "categoryId",
			Rule:    "exists",
			Message: "category does not exist",
		}})
	case errors.Is(err, store.ErrDuplicateBudget):
		Conflict(c, "Budget already exists for this category and month")
	default:
		InternalError(c, err, message)
	}
}
