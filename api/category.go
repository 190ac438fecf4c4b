package api

import (
	"strings"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 收支类别
type CategoryHandler struct {
	store  store.Store
	userID string
}

func NewCategoryHandler(st store.Store, userID string) *CategoryHandler {
	return &CategoryHandler{store: st, userID: userID}
}

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,max=50" example:"Food & Dining"`
	Icon  string `json:"icon" binding:"required,max=50" example:"utensils"`
	Color string `json:"color" binding:"required,max=20" example:"#ef4444"` // 颜色代码
}

// List 列出当前用户的类别
// @Summary 获取类别列表
// @Description 获取默认用户的全部收支类别
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category "类别列表"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.store.GetCategories(c.Request.Context(), h.userID)
	if err != nil {
		InternalError(c, err, "Failed to fetch categories")
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 为默认用户创建收支类别
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} models.Category "创建成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	req := BindJSON[CategoryCreateRequest](c)
	if !req.OK() {
		ValidationFailed(c, "Invalid category data", req.Errors)
		return
	}
	name := strings.TrimSpace(req.Value.Name)
	if name == "" {
		ValidationFailed(c, "Invalid category data", []FieldError{{Field: "name", Rule: "required", Message: "is required"}})
		return
	}

	created, err := h.store.CreateCategory(c.Request.Context(), models.Category{
		Name:   name,
		Icon:   req.Value.Icon,
		Color:  req.Value.Color,
		UserID: h.userID,
	})
	if err != nil {
		InternalError(c, err, "Failed to create category")
		return
	}
	Success(c, created)
}
