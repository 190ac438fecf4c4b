package api

import (
	"bytes"
	"fmt"
	"net/http"

	"fintrack/service"

	"github.com/gin-gonic/gin"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	svc    *service.ExportService
	userID string
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.ExportService, userID string) *ExportHandler {
	return &ExportHandler{svc: svc, userID: userID}
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出收支记录为 CSV
// @Description 按日期倒序导出收支记录，表头为 Date,Description,Category,Type,Amount，金额原样输出
// @Tags 导出
// @Produce text/csv
// @Param startDate query string false "开始日期 (2025-08-01 或 RFC3339)"
// @Param endDate query string false "结束日期 (2025-08-31 或 RFC3339)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "日期格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, rows); err != nil {
		InternalError(c, err, "Failed to export data")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transactions.csv")
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// ExportExcel 导出收支记录为 Excel
// @Summary 导出收支记录为 Excel
// @Description 导出收支记录为 xlsx 文件，末尾附收入与支出合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "开始日期 (2025-08-01 或 RFC3339)"
// @Param endDate query string false "结束日期 (2025-08-31 或 RFC3339)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "日期格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := service.WriteExcel(&buf, rows); err != nil {
		InternalError(c, err, "Failed to export data")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transactions.xlsx")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportJSON 导出收支记录为 JSON
// @Summary 导出收支记录为 JSON
// @Description 导出收支记录及收入、支出合计
// @Tags 导出
// @Produce json
// @Param startDate query string false "开始日期 (2025-08-01 或 RFC3339)"
// @Param endDate query string false "结束日期 (2025-08-31 或 RFC3339)"
// @Success 200 {object} service.ExportResult "导出结果"
// @Failure 400 {object} ErrorResponse "日期格式错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	filter, errs := transactionFilter(c)
	if len(errs) > 0 {
		ValidationFailed(c, "Invalid date range", errs)
		return
	}

	result, err := h.svc.JSON(c.Request.Context(), h.userID, filter)
	if err != nil {
		InternalError(c, err, "Failed to export data")
		return
	}
	Success(c, result)
}

func (h *ExportHandler) rows(c *gin.Context) ([]service.ExportRow, bool) {
	filter, errs := transactionFilter(c)
	if len(errs) > 0 {
		ValidationFailed(c, "Invalid date range", errs)
		return nil, false
	}

	rows, err := h.svc.Rows(c.Request.Context(), h.userID, filter)
	if err != nil {
		InternalError(c, err, "Failed to export data")
		return nil, false
	}
	return rows, true
}
