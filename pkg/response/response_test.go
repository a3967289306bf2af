package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"child-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// record runs write against a fresh context; a non-empty reqID is set the
// way the RequestID middleware would.
func record(reqID string, write func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if reqID != "" {
		c.Set(RequestIDKey, reqID)
	}
	write(c)
	return w
}

func rawField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	v, ok := raw[field]
	require.True(t, ok, "missing %q in %s", field, body)
	return string(v)
}

func TestSuccessEnvelopes(t *testing.T) {
	balance := map[string]string{"child_id": "child-1", "balance": "250"}
	tests := []struct {
		name   string
		write  func(c *gin.Context)
		status int
	}{
		{"ok", func(c *gin.Context) { OK(c, balance) }, http.StatusOK},
		{"created", func(c *gin.Context) { Created(c, balance) }, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record("req-"+tt.name, tt.write)
			assert.Equal(t, tt.status, w.Code)

			var resp SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "req-"+tt.name, resp.RequestID)
			_, err := time.Parse(time.RFC3339, resp.Timestamp)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"child_id":"child-1","balance":"250"}`, rawField(t, w.Body.Bytes(), "data"))
			assert.NotContains(t, w.Body.String(), `"count"`)
		})
	}
}

func TestSuccess_GeneratesRequestID(t *testing.T) {
	w := record("", func(c *gin.Context) { OK(c, nil) })

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.RequestID, 36)
}

func TestList(t *testing.T) {
	w := record("", func(c *gin.Context) { List(c, []string{"alice", "bob"}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["alice","bob"]`, rawField(t, w.Body.Bytes(), "data"))
	assert.JSONEq(t, `2`, rawField(t, w.Body.Bytes(), "count"))

	var none []int
	w = record("", func(c *gin.Context) { List(c, none) })
	assert.JSONEq(t, `[]`, rawField(t, w.Body.Bytes(), "data"))
	assert.JSONEq(t, `0`, rawField(t, w.Body.Bytes(), "count"))
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		kind    string
		message string
	}{
		{"app error", apperror.ErrInsufficientBalance(), http.StatusPaymentRequired, "WAL_005", "INSUFFICIENT_FUNDS", "Insufficient balance"},
		{"wrapped app error", fmt.Errorf("pay: %w", apperror.ErrBelowTargetAge()), http.StatusUnprocessableEntity, "WAL_006", "POLICY_VIOLATION", ""},
		{"forbidden", apperror.ErrUnauthorized(), http.StatusForbidden, "AUTH_001", "UNAUTHORIZED", ""},
		{"unknown error", fmt.Errorf("pq: relation missing"), http.StatusInternalServerError, "SYS_000", "INTERNAL", "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record("req-err", func(c *gin.Context) { Error(c, tt.err) })
			assert.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.ErrorCode)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, "req-err", resp.RequestID)
			assert.NotEmpty(t, resp.Timestamp)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Message)
			}
			assert.NotContains(t, w.Body.String(), "relation missing")
		})
	}
}
