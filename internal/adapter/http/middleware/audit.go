package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditTarget struct {
	action       domain.AuditAction
	resourceType string
	idParam      string
}

// auditRoutes maps "METHOD route-template" to the action it records.
var auditRoutes = map[string]auditTarget{
	"POST /api/v1/auth/register": {domain.AuditActionRegister, "guardian_credential", ""},
	"POST /api/v1/auth/login":    {domain.AuditActionLogin, "session", ""},
	"POST /api/v1/children":      {domain.AuditActionCreateChild, "child_profile", ""},

	"POST /api/v1/children/:childID/investments": {domain.AuditActionInvest, "investment", ""},

	"POST /api/v1/children/:childID/guardians":              {domain.AuditActionGuardianChange, "guardian", ""},
	"DELETE /api/v1/children/:childID/guardians/:address":   {domain.AuditActionGuardianChange, "guardian", "address"},
	"PUT /api/v1/children/:childID/guardians/:address/role": {domain.AuditActionGuardianChange, "guardian", "address"},
	"PUT /api/v1/children/:childID/approvals":               {domain.AuditActionGuardianChange, "guardian_system", ""},
	"POST /api/v1/children/:childID/institutions":           {domain.AuditActionInstitutionChange, "institution", ""},
	"POST /api/v1/children/:childID/payments":               {domain.AuditActionInstitutionPay, "institution_payment", ""},

	"POST /api/v1/children/:childID/institutions/:address/deactivate": {domain.AuditActionInstitutionChange, "institution", "address"},

	"POST /api/v1/children/:childID/plans":                 {domain.AuditActionPlanChange, "investment_plan", ""},
	"POST /api/v1/children/:childID/plans/:planID/execute": {domain.AuditActionPlanChange, "investment_plan", "planID"},
	"POST /api/v1/children/:childID/plans/:planID/pause":   {domain.AuditActionPlanChange, "investment_plan", "planID"},
	"POST /api/v1/children/:childID/plans/:planID/resume":  {domain.AuditActionPlanChange, "investment_plan", "planID"},
	"POST /api/v1/children/:childID/plans/:planID/cancel":  {domain.AuditActionPlanChange, "investment_plan", "planID"},
	"PUT /api/v1/children/:childID/strategy":               {domain.AuditActionStrategyChange, "investment_strategy", ""},
	"POST /api/v1/children/:childID/yields":                {domain.AuditActionYield, "yield_record", ""},

	"POST /api/v1/children/:childID/emergency-pause":   {domain.AuditActionEmergency, "child_profile", ""},
	"DELETE /api/v1/children/:childID/emergency-pause": {domain.AuditActionEmergency, "child_profile", ""},
}

// AuditLog creates an audit middleware that logs successful write operations.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		target, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       target.action,
			ResourceType: target.resourceType,
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now(),
		}
		if addr, ok := Caller(c); ok {
			entry.Actor = &addr
		}
		if childID := c.Param(ParamChildID); childID != "" {
			entry.ChildID = &childID
		}
		if target.idParam != "" {
			entry.ResourceID = c.Param(target.idParam)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}
