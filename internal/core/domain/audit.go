package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegister          AuditAction = "REGISTER"
	AuditActionLogin             AuditAction = "LOGIN"
	AuditActionCreateChild       AuditAction = "CREATE_CHILD"
	AuditActionInvest            AuditAction = "INVEST"
	AuditActionGuardianChange    AuditAction = "GUARDIAN_CHANGE"
	AuditActionInstitutionChange AuditAction = "INSTITUTION_CHANGE"
	AuditActionInstitutionPay    AuditAction = "INSTITUTION_PAYMENT"
	AuditActionPlanChange        AuditAction = "PLAN_CHANGE"
	AuditActionStrategyChange    AuditAction = "STRATEGY_CHANGE"
	AuditActionYield             AuditAction = "YIELD"
	AuditActionEmergency         AuditAction = "EMERGENCY"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        *string     `json:"actor,omitempty"`
	ChildID      *string     `json:"child_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
