package response

import (
	"fmt"
	"runtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexnogueira4/side-take-home/internal/logger"
)

type ErrorResponse struct {
	Success       bool        `json:"success"`
	StatusCode    int         `json:"statusCode"`
	Message       string      `json:"message"`
	ErrorMessages interface{} `json:"errorMessages,omitempty"`
	Stack         string      `json:"stack,omitempty"`
}

func GetCallerInfo(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// ApiError sends an immediate error response and aborts further processing
func ApiError(c *gin.Context, statusCode int, message string, errorMessages ...interface{}) {
	stack := GetCallerInfo(2)

	logger.ErrorLogger.Error("API Error",
		zap.Int("statusCode", statusCode),
		zap.String("message", message),
		zap.String("ip", c.ClientIP()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("stack", stack),
	)

	errResp := ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Stack:      stack,
	}

	if len(errorMessages) > 0 {
		errResp.ErrorMessages = errorMessages[0]
	}

	c.AbortWithStatusJSON(statusCode, gin.H{"error": errResp})
}
