package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Format(t *testing.T) {
	plain := New("WAL_005", KindInsufficientFunds, "Insufficient balance")
	assert.Equal(t, "[WAL_005] Insufficient balance", plain.Error())
	assert.Nil(t, plain.Unwrap())

	cause := errors.New("connection refused")
	wrapped := Wrap("SYS_001", KindInternal, "DB error", cause)
	assert.Equal(t, "[SYS_001] DB error: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestAppError_AsThroughServiceWrapping(t *testing.T) {
	err := fmt.Errorf("execute plan p-1: %w", ErrPlanNotActive())

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INV_003", appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestWithStatus_OverridesKindStatus(t *testing.T) {
	err := New("AUTH_002", KindUnauthorized, "bad credentials").WithStatus(http.StatusUnauthorized)
	assert.Equal(t, KindUnauthorized, err.Kind)
	assert.Equal(t, http.StatusUnauthorized, err.HTTPStatus)
	assert.Equal(t, http.StatusForbidden, ErrUnauthorized().HTTPStatus)
}

func TestIsKindAndHasCode_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("pay: %w", ErrBelowTargetAge())

	assert.True(t, IsKind(err, KindPolicyViolation))
	assert.False(t, IsKind(err, KindNotFound))
	assert.True(t, HasCode(err, "WAL_006"))
	assert.False(t, HasCode(errors.New("plain"), "WAL_006"))
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		kind       Kind
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), "AUTH_001", KindUnauthorized, http.StatusForbidden},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_002", KindUnauthorized, http.StatusUnauthorized},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", KindUnauthorized, http.StatusUnauthorized},
		{"AlreadyInitialized", ErrAlreadyInitialized(), "GRD_001", KindAlreadyExists, http.StatusConflict},
		{"DuplicateGuardian", ErrDuplicateGuardian(), "GRD_002", KindAlreadyExists, http.StatusConflict},
		{"GuardianNotFound", ErrGuardianNotFound(), "GRD_003", KindNotFound, http.StatusNotFound},
		{"CannotRemoveOwner", ErrCannotRemoveOwner(), "GRD_004", KindInvalidArgument, http.StatusBadRequest},
		{"InvalidApprovalCount", ErrInvalidApprovalCount(), "GRD_006", KindInvalidArgument, http.StatusBadRequest},
		{"IdentityNotRegistered", ErrIdentityNotRegistered(), "GRD_008", KindNotFound, http.StatusNotFound},
		{"InsufficientBalance", ErrInsufficientBalance(), "WAL_005", KindInsufficientFunds, http.StatusPaymentRequired},
		{"BelowTargetAge", ErrBelowTargetAge(), "WAL_006", KindPolicyViolation, http.StatusUnprocessableEntity},
		{"EmergencyPaused", ErrEmergencyPaused(), "WAL_007", KindPolicyViolation, http.StatusUnprocessableEntity},
		{"InstitutionNotApproved", ErrInstitutionNotApproved(), "INS_003", KindPolicyViolation, http.StatusUnprocessableEntity},
		{"PlanNotActive", ErrPlanNotActive(), "INV_003", KindInvalidStateTransition, http.StatusConflict},
		{"AllocationMismatch", ErrAllocationMismatch(), "INV_006", KindInvalidArgument, http.StatusBadRequest},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", KindRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestInvalidStateTransition_Message(t *testing.T) {
	err := ErrInvalidStateTransition("COMPLETED", "PAUSED")
	assert.Equal(t, "INV_005", err.Code)
	assert.Contains(t, err.Message, "COMPLETED")
	assert.Contains(t, err.Message, "PAUSED")
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("something broke")
	err := InternalError(inner)
	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestValidation(t *testing.T) {
	err := Validation("field X is required")
	assert.Equal(t, "REQ_001", err.Code)
	assert.Equal(t, "field X is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}
