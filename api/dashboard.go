package api

import (
	"strconv"
	"time"

	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘汇总
type DashboardHandler struct {
	svc    *service.DashboardService
	userID string
}

func NewDashboardHandler(svc *service.DashboardService, userID string) *DashboardHandler {
	return &DashboardHandler{svc: svc, userID: userID}
}

// Summary 月度收支汇总
// @Summary 获取月度汇总
// @Description 汇总某月收入、支出、结余以及各预算的执行进度，不传月份时取当前月份（UTC）
// @Tags 仪表盘
// @Produce json
// @Param month query string false "月份 (2025-08)"
// @Success 200 {object} models.DashboardSummary "汇总结果"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	month, fe := monthQuery(c)
	if fe != nil {
		ValidationFailed(c, "Invalid month", []FieldError{*fe})
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), h.userID, month)
	if err != nil {
		InternalError(c, err, "Failed to fetch dashboard data")
		return
	}
	Success(c, summary)
}

// Categories 按类别统计月度支出
// @Summary 获取类别支出分布
// @Description 按类别统计某月支出金额、笔数及占比，顺序与类别列表一致
// @Tags 仪表盘
// @Produce json
// @Param month query string false "月份 (2025-08)"
// @Success 200 {array} models.CategoryTotal "类别分布"
// @Failure 400 {object} ErrorResponse "月份格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/dashboard/categories [get]
func (h *DashboardHandler) Categories(c *gin.Context) {
	month, fe := monthQuery(c)
	if fe != nil {
		ValidationFailed(c, "Invalid month", []FieldError{*fe})
		return
	}

	list, err := h.svc.CategoryBreakdown(c.Request.Context(), h.userID, month)
	if err != nil {
		InternalError(c, err, "Failed to fetch category breakdown")
		return
	}
	Success(c, list)
}

// Trends 每日收支趋势
// @Summary 获取每日收支趋势
// @Description 返回截至 endDate 的连续若干天每日收入与支出，按日期升序
// @Tags 仪表盘
// @Produce json
// @Param endDate query string false "结束日期，默认今天 (2025-08-20)"
// @Param days query int false "天数 1-366，默认 7"
// @Success 200 {array} models.DailyTotal "每日收支"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/dashboard/trends [get]
func (h *DashboardHandler) Trends(c *gin.Context) {
	var errs []FieldError

	var endDate time.Time
	if end, fe := dateQuery(c, "endDate", false); fe != nil {
		errs = append(errs, *fe)
	} else if end != nil {
		endDate = *end
	}

	days := service.DefaultTrendDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > service.MaxTrendDays {
			errs = append(errs, FieldError{
				Field:   "days",
				Rule:    "range",
				Message: "must be an integer between 1 and " + strconv.Itoa(service.MaxTrendDays),
			})
		} else {
			days = n
		}
	}

	if len(errs) > 0 {
		ValidationFailed(c, "Invalid trend query", errs)
		return
	}

	series, err := h.svc.Trends(c.Request.Context(), h.userID, endDate, days)
	if err != nil {
		InternalError(c, err, "Failed to fetch spending trends")
		return
	}
	Success(c, series)
}
