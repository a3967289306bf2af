package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the failure category a caller can branch on.
type Kind string

const (
	KindUnauthorized           Kind = "UNAUTHORIZED"
	KindNotFound               Kind = "NOT_FOUND"
	KindAlreadyExists          Kind = "ALREADY_EXISTS"
	KindInvalidArgument        Kind = "INVALID_ARGUMENT"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindInsufficientFunds      Kind = "INSUFFICIENT_FUNDS"
	KindPolicyViolation        Kind = "POLICY_VIOLATION"
	KindRateLimited            Kind = "RATE_LIMITED"
	KindInternal               Kind = "INTERNAL"
)

var kindStatus = map[Kind]int{
	KindUnauthorized:           http.StatusForbidden,
	KindNotFound:               http.StatusNotFound,
	KindAlreadyExists:          http.StatusConflict,
	KindInvalidArgument:        http.StatusBadRequest,
	KindInvalidStateTransition: http.StatusConflict,
	KindInsufficientFunds:      http.StatusPaymentRequired,
	KindPolicyViolation:        http.StatusUnprocessableEntity,
	KindRateLimited:            http.StatusTooManyRequests,
	KindInternal:               http.StatusInternalServerError,
}

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the HTTP status of its kind.
func New(code string, kind Kind, message string) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: kindStatus[kind],
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, kind Kind, message string, err error) *AppError {
	e := New(code, kind, message)
	e.Err = err
	return e
}

// WithStatus overrides the HTTP status derived from the kind.
func (e *AppError) WithStatus(status int) *AppError {
	e.HTTPStatus = status
	return e
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Authentication & Authorization (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", KindUnauthorized, "Caller lacks the required guardian role")
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", KindUnauthorized, "Invalid credentials").WithStatus(http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", KindUnauthorized, "Invalid or expired token").WithStatus(http.StatusUnauthorized)
}

func ErrIdentityExists() *AppError {
	return New("AUTH_004", KindAlreadyExists, "Identity already registered")
}

// ---- Guardian Registry (GRD) ----

func ErrAlreadyInitialized() *AppError {
	return New("GRD_001", KindAlreadyExists, "Guardian system already initialized")
}

func ErrDuplicateGuardian() *AppError {
	return New("GRD_002", KindAlreadyExists, "Guardian already exists")
}

func ErrGuardianNotFound() *AppError {
	return New("GRD_003", KindNotFound, "Guardian not found")
}

func ErrCannotRemoveOwner() *AppError {
	return New("GRD_004", KindInvalidArgument, "Cannot remove owner")
}

func ErrCannotChangeOwnerRole() *AppError {
	return New("GRD_005", KindInvalidArgument, "Cannot change owner role")
}

func ErrInvalidApprovalCount() *AppError {
	return New("GRD_006", KindInvalidArgument, "Required approvals must be between 1 and the guardian count")
}

func ErrInvalidRole() *AppError {
	return New("GRD_007", KindInvalidArgument, "Unknown guardian role")
}

func ErrIdentityNotRegistered() *AppError {
	return New("GRD_008", KindNotFound, "Guardian address has no registered identity")
}

// ---- Wallet Core (WAL) ----

func ErrInvalidAmount() *AppError {
	return New("WAL_001", KindInvalidArgument, "Amount must be a positive whole number")
}

func ErrInvalidTargetAge() *AppError {
	return New("WAL_002", KindInvalidArgument, "Target age must be at least 18")
}

func ErrInvalidTargetAmount() *AppError {
	return New("WAL_003", KindInvalidArgument, "Target amount must be positive")
}

func ErrProfileNotFound() *AppError {
	return New("WAL_004", KindNotFound, "Child profile not found")
}

func ErrInsufficientBalance() *AppError {
	return New("WAL_005", KindInsufficientFunds, "Insufficient balance")
}

func ErrBelowTargetAge() *AppError {
	return New("WAL_006", KindPolicyViolation, "Cannot spend before target age")
}

func ErrEmergencyPaused() *AppError {
	return New("WAL_007", KindPolicyViolation, "Wallet is emergency paused")
}

// ---- Institutions (INS) ----

func ErrInstitutionAlreadyApproved() *AppError {
	return New("INS_001", KindAlreadyExists, "Institution already approved")
}

func ErrInstitutionNotFound() *AppError {
	return New("INS_002", KindNotFound, "Institution not found")
}

func ErrInstitutionNotApproved() *AppError {
	return New("INS_003", KindPolicyViolation, "Institution not approved or inactive")
}

func ErrInvalidInstitutionType() *AppError {
	return New("INS_004", KindInvalidArgument, "Unknown institution type")
}

// ---- Investment Ledger (INV) ----

func ErrInvalidPeriods() *AppError {
	return New("INV_001", KindInvalidArgument, "Total periods must be greater than 0")
}

func ErrPlanNotFound() *AppError {
	return New("INV_002", KindNotFound, "Investment plan not found")
}

func ErrPlanNotActive() *AppError {
	return New("INV_003", KindInvalidStateTransition, "Plan is not active")
}

func ErrPaymentNotDue() *AppError {
	return New("INV_004", KindPolicyViolation, "Payment not due yet")
}

func ErrInvalidStateTransition(from, to string) *AppError {
	return New("INV_005", KindInvalidStateTransition, fmt.Sprintf("Cannot move plan from %s to %s", from, to))
}

func ErrAllocationMismatch() *AppError {
	return New("INV_006", KindInvalidArgument, "Allocations must sum to 100%")
}

func ErrInvalidRiskLevel() *AppError {
	return New("INV_007", KindInvalidArgument, "Risk level must be between 1 and 5")
}

func ErrInvalidPlanType() *AppError {
	return New("INV_008", KindInvalidArgument, "Unknown plan type")
}

func ErrStrategyNotFound() *AppError {
	return New("INV_009", KindNotFound, "Investment strategy not found")
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", KindRateLimited, "Rate limit exceeded")
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal server error", err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", KindInvalidArgument, message)
}
