package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"fintrack/models"
	"fintrack/store"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// CSVHeader 导出 CSV 的表头
var CSVHeader = []string{"Date", "Description", "Category", "Type", "Amount"}

// ExportRow 导出的一行收支记录，类别已解析为名称
type ExportRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
}

// ExportResult JSON 导出结果
type ExportResult struct {
	TotalCount   int                  `json:"totalCount"`
	Income       decimal.Decimal      `json:"income"`
	Expenses     decimal.Decimal      `json:"expenses"`
	Transactions []models.Transaction `json:"transactions"`
}

// ExportService 收支记录导出
type ExportService struct {
	reader LedgerReader
}

// NewExportService 创建导出服务
func NewExportService(reader LedgerReader) *ExportService {
	return &ExportService{reader: reader}
}

// Rows 查询筛选范围内的收支记录（日期倒序）并关联类别名称
func (s *ExportService) Rows(ctx context.Context, userID string, filter store.TransactionFilter) ([]ExportRow, error) {
	txns, err := s.reader.GetTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	categories, err := s.reader.GetCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	byID := indexCategories(categories)

	rows := make([]ExportRow, 0, len(txns))
	for _, t := range txns {
		name := models.UnknownCategoryName
		if c, ok := byID[t.CategoryID]; ok {
			name = c.Name
		}
		rows = append(rows, ExportRow{
			Date:        t.Date.UTC().Format(DateLayout),
			Description: t.Description,
			Category:    name,
			Type:        string(t.Type),
			Amount:      t.Amount,
		})
	}
	return rows, nil
}

// JSON 查询筛选范围内的收支记录并计算收入、支出合计
func (s *ExportService) JSON(ctx context.Context, userID string, filter store.TransactionFilter) (ExportResult, error) {
	txns, err := s.reader.GetTransactions(ctx, userID, filter)
	if err != nil {
		return ExportResult{}, fmt.Errorf("load transactions: %w", err)
	}

	result := ExportResult{
		TotalCount:   len(txns),
		Income:       decimal.Zero,
		Expenses:     decimal.Zero,
		Transactions: txns,
	}
	for _, t := range txns {
		amount, err := ParseAmount(t.Amount)
		if err != nil {
			return ExportResult{}, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.IsIncome() {
			result.Income = result.Income.Add(amount)
		} else if t.IsExpense() {
			result.Expenses = result.Expenses.Add(amount)
		}
	}
	return result, nil
}

// WriteCSV 写出 CSV，包含分隔符、引号或换行的字段按标准规则加引号转义
func WriteCSV(w io.Writer, rows []ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write([]string{r.Date, r.Description, r.Category, r.Type, r.Amount}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExcelSheetName 导出 Excel 的工作表名
const ExcelSheetName = "Transactions"

// WriteExcel 写出 xlsx，末尾追加收入、支出合计行
func WriteExcel(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExcelSheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return err
	}

	f.SetColWidth(ExcelSheetName, "A", "A", 12)
	f.SetColWidth(ExcelSheetName, "B", "B", 36)
	f.SetColWidth(ExcelSheetName, "C", "C", 18)
	f.SetColWidth(ExcelSheetName, "D", "D", 10)
	f.SetColWidth(ExcelSheetName, "E", "E", 14)

	for i, h := range CSVHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ExcelSheetName, cell, h)
	}
	f.SetCellStyle(ExcelSheetName, "A1", "E1", headerStyle)

	income, expenses := decimal.Zero, decimal.Zero
	for i, r := range rows {
		row := i + 2
		amount, err := ParseAmount(r.Amount)
		if err != nil {
			return err
		}
		switch models.TransactionType(r.Type) {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(amount)
		}

		f.SetCellValue(ExcelSheetName, fmt.Sprintf("A%d", row), r.Date)
		f.SetCellValue(ExcelSheetName, fmt.Sprintf("B%d", row), r.Description)
		f.SetCellValue(ExcelSheetName, fmt.Sprintf("C%d", row), r.Category)
		f.SetCellValue(ExcelSheetName, fmt.Sprintf("D%d", row), r.Type)
		f.SetCellValue(ExcelSheetName, fmt.Sprintf("E%d", row), amount.InexactFloat64())
		f.SetCellStyle(ExcelSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
	}

	// 合计行
	incomeRow := len(rows) + 2
	expenseRow := incomeRow + 1
	f.SetCellValue(ExcelSheetName, fmt.Sprintf("A%d", incomeRow), "Total income")
	f.MergeCell(ExcelSheetName, fmt.Sprintf("A%d", incomeRow), fmt.Sprintf("D%d", incomeRow))
	f.SetCellValue(ExcelSheetName, fmt.Sprintf("E%d", incomeRow), income.InexactFloat64())
	f.SetCellValue(ExcelSheetName, fmt.Sprintf("A%d", expenseRow), "Total expenses")
	f.MergeCell(ExcelSheetName, fmt.Sprintf("A%d", expenseRow), fmt.Sprintf("D%d", expenseRow))
	f.SetCellValue(ExcelSheetName, fmt.Sprintf("E%d", expenseRow), expenses.InexactFloat64())
	f.SetCellStyle(ExcelSheetName, fmt.Sprintf("A%d", incomeRow), fmt.Sprintf("E%d", expenseRow), summaryStyle)

	return f.Write(w)
}
