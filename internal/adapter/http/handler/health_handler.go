package handler

import (
	"net/http"
	"sync"
	"time"

	"child-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type dependencyStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are probed in parallel; any
// failure turns the answer into a 503 so load balancers drain the instance.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu      sync.Mutex
			wg      sync.WaitGroup
			deps    = make(map[string]dependencyStatus, len(checkers))
			healthy = true
		)
		for _, hc := range checkers {
			wg.Add(1)
			go func(hc ports.HealthChecker) {
				defer wg.Done()
				start := time.Now()
				err := hc.Ping(c.Request.Context())
				st := dependencyStatus{Status: "healthy", LatencyMs: time.Since(start).Milliseconds()}
				if err != nil {
					st.Status = "unhealthy"
					st.Error = err.Error()
				}

				mu.Lock()
				defer mu.Unlock()
				deps[hc.Name()] = st
				healthy = healthy && err == nil
			}(hc)
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "dependencies": deps})
	}
}
