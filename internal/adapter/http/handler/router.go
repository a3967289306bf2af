package handler

import (
	"time"

	"child-wallet/internal/adapter/http/middleware"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	GuardianSvc    ports.GuardianService
	WalletSvc      ports.WalletService
	InvestmentSvc  ports.InvestmentService
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	RateRequests   int64
	RateWindow     time.Duration
	Events         EventStream // nil = live feed disabled
	AllowedOrigins []string
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Docs           *APIDocs           // nil = /swagger answers 404
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	deps.Docs.register(r)

	rules := middleware.DefaultRateLimitRules(deps.RateRequests, deps.RateWindow)
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl(middleware.GroupAuthRegister), authHandler.Register)
		auth.POST("/login", rl(middleware.GroupAuthLogin), authHandler.Login)
	}

	// --- JWT-authenticated routes; caller = token subject ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	viewer := middleware.RequireRole(deps.GuardianSvc, domain.RoleViewer, deps.Logger)

	walletHandler := NewWalletHandler(deps.WalletSvc)
	paymentHandler := NewPaymentHandler(deps.WalletSvc)
	guardianHandler := NewGuardianHandler(deps.GuardianSvc)
	investmentHandler := NewInvestmentHandler(deps.InvestmentSvc)
	dashboardHandler := NewDashboardHandler(deps.WalletSvc, deps.Events, deps.AllowedOrigins)

	children := v1.Group("/children", jwtAuth, rl(middleware.GroupAPI))
	children.POST("", walletHandler.CreateChild)

	// Mutators check roles in the service layer; reads need Viewer here.
	child := children.Group("/:" + middleware.ParamChildID)
	{
		child.GET("", viewer, walletHandler.GetChild)
		child.GET("/balance", viewer, walletHandler.GetBalance)
		child.GET("/report", viewer, dashboardHandler.Report)
		child.GET("/spendable", viewer, dashboardHandler.Spendable)
		child.GET("/events", viewer, dashboardHandler.Events)

		child.GET("/investments", viewer, walletHandler.ListInvestments)
		child.POST("/investments", walletHandler.Invest)

		child.GET("/guardians", viewer, guardianHandler.List)
		child.POST("/guardians", guardianHandler.Add)
		child.DELETE("/guardians/:address", guardianHandler.Remove)
		child.PUT("/guardians/:address/role", guardianHandler.UpdateRole)
		child.PUT("/approvals", guardianHandler.SetRequiredApprovals)
		child.GET("/permissions", viewer, guardianHandler.CheckPermission)

		child.GET("/institutions", viewer, paymentHandler.ListInstitutions)
		child.POST("/institutions", paymentHandler.AddInstitution)
		child.POST("/institutions/:address/deactivate", paymentHandler.DeactivateInstitution)
		child.GET("/payments", viewer, paymentHandler.ListPayments)
		child.POST("/payments", paymentHandler.Pay)

		child.GET("/plans", viewer, investmentHandler.ListActivePlans)
		child.POST("/plans", investmentHandler.CreatePlan)
		child.GET("/plans/:planID", viewer, investmentHandler.GetPlan)
		child.POST("/plans/:planID/execute", investmentHandler.ExecutePlan)
		child.POST("/plans/:planID/pause", investmentHandler.PausePlan)
		child.POST("/plans/:planID/resume", investmentHandler.ResumePlan)
		child.POST("/plans/:planID/cancel", investmentHandler.CancelPlan)

		child.GET("/strategy", viewer, investmentHandler.GetStrategy)
		child.PUT("/strategy", investmentHandler.SetStrategy)

		child.GET("/yields", viewer, investmentHandler.YieldHistory)
		child.POST("/yields", investmentHandler.RecordYield)
		child.GET("/yields/total", viewer, investmentHandler.TotalYield)

		child.GET("/emergency-pause", viewer, walletHandler.GetEmergencyPause)
		child.POST("/emergency-pause", walletHandler.EngageEmergencyPause)
		child.DELETE("/emergency-pause", walletHandler.LiftEmergencyPause)
	}

	return r
}
