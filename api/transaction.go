package api

import (
	"errors"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录
type TransactionHandler struct {
	store  store.Store
	userID string
}

func NewTransactionHandler(st store.Store, userID string) *TransactionHandler {
	return &TransactionHandler{store: st, userID: userID}
}

type TransactionCreateRequest struct {
	Amount      string `json:"amount" binding:"required,amount" example:"45.50"`
	Description string `json:"description" binding:"required,max=255" example:"Lunch at restaurant"`
	CategoryID  string `json:"categoryId" binding:"required" example:"cat-1"`
	Type        string `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Date        string `json:"date" binding:"required,isodate" example:"2025-08-20"`
}

// List 列出收支记录
// @Summary 获取收支记录
// @Description 按日期倒序返回默认用户的收支记录，可按日期区间筛选（闭区间，仅日期的结束值包含当天）
// @Tags 收支记录
// @Produce json
// @Param startDate query string false "开始日期 (2025-08-01 或 RFC3339)"
// @Param endDate query string false "结束日期 (2025-08-31 或 RFC3339)"
// @Success 200 {array} models.Transaction "收支记录"
// @Failure 400 {object} ErrorResponse "日期格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	filter, errs := transactionFilter(c)
	if len(errs) > 0 {
		ValidationFailed(c, "Invalid date range", errs)
		return
	}

	list, err := h.store.GetTransactions(c.Request.Context(), h.userID, filter)
	if err != nil {
		InternalError(c, err, "Failed to fetch transactions")
		return
	}
	Success(c, list)
}

// Create 记一笔收支
// @Summary 创建收支记录
// @Description 为默认用户创建一条收支记录，类别必须存在
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body TransactionCreateRequest true "收支信息"
// @Success 200 {object} models.Transaction "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误或类别不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	req := BindJSON[TransactionCreateRequest](c)
	if !req.OK() {
		ValidationFailed(c, "Invalid transaction data", req.Errors)
		return
	}
	// 已通过 isodate 校验
	date, _ := parseDate(req.Value.Date)

	created, err := h.store.CreateTransaction(c.Request.Context(), models.Transaction{
		Amount:      req.Value.Amount,
		Description: req.Value.Description,
		CategoryID:  req.Value.CategoryID,
		Type:        models.TransactionType(req.Value.Type),
		Date:        date,
		UserID:      h.userID,
	})
	switch {
	case errors.Is(err, store.ErrCategoryNotFound):
		ValidationFailed(c, "Invalid transaction data", []FieldError{{
			Field:   "categoryId",
			Rule:    "exists",
			Message: "category does not exist",
		}})
	case err != nil:
		InternalError(c, err, "Failed to create transaction")
	default:
		Success(c, created)
	}
}
