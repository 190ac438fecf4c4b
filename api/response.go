package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构
// Error 为固定文案，内部错误详情只写日志，不返回给客户端
type ErrorResponse struct {
	Error   string       `json:"error" example:"Invalid transaction data"`
	Details []FieldError `json:"details,omitempty"`
}

// Success 成功响应，直接输出数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// ValidationFailed 400 校验失败响应，携带字段级错误
func ValidationFailed(c *gin.Context, message string, details []FieldError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500 错误响应，记录内部错误后返回固定文案
func InternalError(c *gin.Context, err error, message string) {
	log.Printf("%s %s: %s: %v", c.Request.Method, c.FullPath(), message, err)
	Error(c, http.StatusInternalServerError, message)
}
