package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// FieldError 单个字段的校验失败信息
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Rule    string `json:"rule" example:"amount"`
	Message string `json:"message" example:"must be a decimal with at most two fractional digits"`
}

// Validation 请求体校验结果：成功时携带解析后的值，失败时携带字段错误
type Validation[T any] struct {
	Value  T
	Errors []FieldError
}

// OK 是否校验通过
func (v Validation[T]) OK() bool {
	return len(v.Errors) == 0
}

// BindJSON 解析并校验 JSON 请求体
func BindJSON[T any](c *gin.Context) Validation[T] {
	var value T
	if err := c.ShouldBindJSON(&value); err != nil {
		return Validation[T]{Errors: toFieldErrors(err)}
	}
	return Validation[T]{Value: value}
}

func init() {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// 自定义校验规则
// amount: 非负金额，最多两位小数；positive_amount: 同 amount 且大于 0
// yearmonth: YYYY-MM；isodate: YYYY-MM-DD 或 RFC3339
var customRules = map[string]validator.Func{
	"amount": func(fl validator.FieldLevel) bool {
		return amountPattern.MatchString(fl.Field().String())
	},
	"positive_amount": func(fl validator.FieldLevel) bool {
		return isPositiveAmount(fl.Field().String())
	},
	"yearmonth": func(fl validator.FieldLevel) bool {
		return isYearMonth(fl.Field().String())
	},
	"isodate": func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	},
}

// RegisterValidators 在 gin 的校验引擎上注册自定义规则
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// 错误中的字段名使用 JSON 名称
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	return registerRules(v, customRules)
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation rule %q: %w", tag, err)
		}
	}
	return nil
}

func isPositiveAmount(s string) bool {
	if !amountPattern.MatchString(s) {
		return false
	}
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}

func isYearMonth(s string) bool {
	if len(s) != len(monthLayout) {
		return false
	}
	_, err := time.Parse(monthLayout, s)
	return err == nil
}

// parseDateValue 解析 YYYY-MM-DD 或 RFC3339 日期，结果为 UTC；dateOnly 表示输入不含时间部分
func parseDateValue(s string) (t time.Time, dateOnly bool, err error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), false, nil
}

func parseDate(s string) (time.Time, error) {
	t, _, err := parseDateValue(s)
	return t, err
}

func toFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: ruleMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: fmt.Sprintf("must be a %s", jsonKind(typeErr.Type)),
		}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Rule: "required", Message: "request body is required"}}
	}
	return []FieldError{{Field: "body", Rule: "json", Message: "request body must be a valid JSON object"}}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "amount":
		return "must be a decimal with at most two fractional digits"
	case "positive_amount":
		return "must be a positive decimal with at most two fractional digits"
	case "yearmonth":
		return "must be a month in YYYY-MM format"
	case "isodate":
		return "must be a date in YYYY-MM-DD or RFC3339 format"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}
