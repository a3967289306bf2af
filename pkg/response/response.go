// Package response writes the JSON envelopes every endpoint answers with.
package response

import (
	"errors"
	"net/http"
	"time"

	"child-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope. Count is set for lists.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	Count     *int        `json:"count,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Kind      string `json:"kind,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data, nil)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data, nil)
}

// List sends a 200 with items and their count. A nil slice is sent as [].
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	success(c, http.StatusOK, items, &n)
}

// Error maps err to its envelope. Anything that is not an *apperror.AppError
// is reported as an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.New("SYS_000", apperror.KindInternal, "Internal server error")
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Kind:      string(appErr.Kind),
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

func success(c *gin.Context, status int, data interface{}, count *int) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		Count:     count,
		RequestID: requestID(c),
		Timestamp: now(),
	})
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
