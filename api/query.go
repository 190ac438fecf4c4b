package api

import (
	"time"

	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// dateQuery 读取日期查询参数，endOfDay 为 true 时仅日期的值扩展到当天最后时刻
func dateQuery(c *gin.Context, name string, endOfDay bool) (*time.Time, *FieldError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, dateOnly, err := parseDateValue(raw)
	if err != nil {
		return nil, &FieldError{
			Field:   name,
			Rule:    "isodate",
			Message: "must be a date in YYYY-MM-DD or RFC3339 format",
		}
	}
	if dateOnly && endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

// transactionFilter 从 startDate/endDate 查询参数构建筛选条件
func transactionFilter(c *gin.Context) (store.TransactionFilter, []FieldError) {
	var (
		filter store.TransactionFilter
		errs   []FieldError
	)
	start, fe := dateQuery(c, "startDate", false)
	if fe != nil {
		errs = append(errs, *fe)
	}
	end, fe := dateQuery(c, "endDate", true)
	if fe != nil {
		errs = append(errs, *fe)
	}
	filter.Start, filter.End = start, end
	return filter, errs
}

// monthQuery 读取 month 查询参数，空值表示由调用方决定默认月份
func monthQuery(c *gin.Context) (string, *FieldError) {
	month := c.Query("month")
	if month == "" || isYearMonth(month) {
		return month, nil
	}
	return "", &FieldError{Field: "month", Rule: "yearmonth", Message: "must be a month in YYYY-MM format"}
}
