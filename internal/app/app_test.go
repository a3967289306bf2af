package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"child-wallet/config"
	"child-wallet/internal/app"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/service"

	"github.com/alicebob/miniredis/v2"
	ws "github.com/coder/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const t0 int64 = 1_704_067_200 // 2024-01-01T00:00:00Z

type testClock struct{ now atomic.Int64 }

func newTestClock() *testClock {
	c := &testClock{}
	c.now.Store(t0)
	return c
}

func (c *testClock) Now() int64 { return c.now.Load() }

func (c *testClock) Advance(secs int64) { c.now.Add(secs) }

func baseConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Mode: "test"},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		JWT:     config.JWTConfig{Secret: "test-jwt-secret-key-32bytes!!", Expiry: time.Hour, Issuer: "child-wallet-test"},
	}
}

func withRedis(t *testing.T, cfg *config.Config) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	cfg.Redis = config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}
	return mr
}

type testServer struct {
	t      *testing.T
	app    *app.App
	server *httptest.Server
	clock  *testClock
}

func newTestServer(t *testing.T, cfg *config.Config, opts ...app.Option) *testServer {
	t.Helper()
	require.NoError(t, cfg.Validate())

	clock := newTestClock()
	opts = append([]app.Option{app.WithClock(clock)}, opts...)
	a, err := app.New(context.Background(), cfg, zerolog.Nop(), opts...)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close(context.Background())
	})
	return &testServer{t: t, app: a, server: srv, clock: clock}
}

type apiResponse struct {
	Status    int             `json:"-"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Header    http.Header     `json:"-"`
}

func (s *testServer) call(method, path, token string, body interface{}, headers ...string) apiResponse {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.server.URL+path, r)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	if len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	out.Status = resp.StatusCode
	out.Header = resp.Header
	return out
}

func (s *testServer) signup(address string) string {
	s.t.Helper()
	resp := s.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"address":      address,
		"password":     "correct-horse-battery",
		"display_name": strings.ToUpper(address[:1]) + address[1:],
	})
	require.Equal(s.t, http.StatusCreated, resp.Status)

	resp = s.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"address":  address,
		"password": "correct-horse-battery",
	})
	require.Equal(s.t, http.StatusOK, resp.Status)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(s.t, login.Token)
	return login.Token
}

// openWallet creates a ten year old child owned by the token holder.
func (s *testServer) openWallet(token string) string {
	s.t.Helper()
	resp := s.call(http.MethodPost, "/api/v1/children", token, map[string]interface{}{
		"name":          "Emma",
		"birth_date":    t0 - 10*domain.SecondsPerYear,
		"target_age":    18,
		"target_amount": "1000",
		"owner_name":    "Mom",
	})
	require.Equal(s.t, http.StatusCreated, resp.Status)

	var profile domain.ChildProfile
	require.NoError(s.t, json.Unmarshal(resp.Data, &profile))
	return profile.ID
}

func (s *testServer) balance(token, childID string) string {
	s.t.Helper()
	resp := s.call(http.MethodGet, "/api/v1/children/"+childID+"/balance", token, nil)
	require.Equal(s.t, http.StatusOK, resp.Status)
	var out struct {
		Balance string `json:"balance"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &out))
	return out.Balance
}

func TestWalletLifecycle(t *testing.T) {
	cfg := baseConfig()
	withRedis(t, cfg)
	s := newTestServer(t, cfg)

	alice := s.signup("alice")
	bob := s.signup("bob")
	mallory := s.signup("mallory")

	child := s.openWallet(alice)
	base := "/api/v1/children/" + child

	// Outsiders cannot read.
	resp := s.call(http.MethodGet, base+"/balance", mallory, nil)
	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Equal(t, "AUTH_001", resp.ErrorCode)

	// Viewers cannot deposit.
	resp = s.call(http.MethodPost, base+"/guardians", alice, map[string]string{"address": "bob", "name": "Bob", "role": "VIEWER"})
	require.Equal(t, http.StatusCreated, resp.Status)

	// Roles cannot be parked on an address nobody has registered yet.
	resp = s.call(http.MethodPost, base+"/guardians", alice, map[string]string{"address": "eve", "name": "Eve", "role": "WITHDRAWER"})
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "GRD_008", resp.ErrorCode)
	eve := s.signup("eve")
	resp = s.call(http.MethodGet, base+"/balance", eve, nil)
	assert.Equal(t, "AUTH_001", resp.ErrorCode)
	resp = s.call(http.MethodPost, base+"/investments", bob, map[string]interface{}{"amount": "300"})
	assert.Equal(t, "AUTH_001", resp.ErrorCode)

	resp = s.call(http.MethodPut, base+"/guardians/bob/role", alice, map[string]string{"role": "INVESTOR"})
	require.Equal(t, http.StatusOK, resp.Status)

	// Replayed deposits are applied once.
	for i := 0; i < 2; i++ {
		resp = s.call(http.MethodPost, base+"/investments", bob, map[string]interface{}{"amount": "300"},
			"Idempotency-Key", "deposit-1")
		require.Equal(t, http.StatusCreated, resp.Status)
	}
	assert.Equal(t, "300", s.balance(bob, child))

	// Payments wait for the target age.
	resp = s.call(http.MethodPost, base+"/institutions", alice, map[string]string{
		"address": "school-1", "name": "Springfield High", "institution_type": "EDUCATION",
	})
	require.Equal(t, http.StatusCreated, resp.Status)

	pay := map[string]interface{}{"institution": "school-1", "amount": "100", "purpose": "Tuition"}
	resp = s.call(http.MethodPost, base+"/payments", alice, pay)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "WAL_006", resp.ErrorCode)

	s.clock.Advance(8 * domain.SecondsPerYear)

	resp = s.call(http.MethodPost, base+"/payments", bob, pay)
	assert.Equal(t, "AUTH_001", resp.ErrorCode, "investors cannot withdraw")

	resp = s.call(http.MethodPost, base+"/payments", alice, pay)
	require.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "200", s.balance(alice, child))

	resp = s.call(http.MethodPost, base+"/payments", alice, map[string]interface{}{
		"institution": "school-1", "amount": "201", "purpose": "Tuition",
	})
	assert.Equal(t, "WAL_005", resp.ErrorCode)

	// Scheduled deposits.
	resp = s.call(http.MethodPost, base+"/plans", bob, map[string]interface{}{
		"plan_type": "WEEKLY", "amount_per_period": "50", "total_periods": 2,
	})
	require.Equal(t, http.StatusCreated, resp.Status)
	var plan domain.InvestmentPlan
	require.NoError(t, json.Unmarshal(resp.Data, &plan))

	resp = s.call(http.MethodPost, base+"/plans/"+plan.ID+"/execute", bob, nil)
	assert.Equal(t, "INV_004", resp.ErrorCode)

	for i := 0; i < 2; i++ {
		s.clock.Advance(7 * 24 * 60 * 60)
		resp = s.call(http.MethodPost, base+"/plans/"+plan.ID+"/execute", bob, nil)
		require.Equal(t, http.StatusOK, resp.Status)
	}
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, domain.PlanCompleted, plan.Status)
	assert.Equal(t, "300", s.balance(alice, child))

	// Yield is tracked apart from the balance.
	resp = s.call(http.MethodPost, base+"/yields", alice, map[string]interface{}{"amount": "12", "rate_bps": 400, "source": "aave"})
	require.Equal(t, http.StatusCreated, resp.Status)

	// Emergency pause freezes mutations until the Owner lifts it.
	resp = s.call(http.MethodPost, base+"/emergency-pause", bob, nil)
	assert.Equal(t, "AUTH_001", resp.ErrorCode)
	resp = s.call(http.MethodPost, base+"/emergency-pause", alice, nil)
	require.Equal(t, http.StatusOK, resp.Status)

	resp = s.call(http.MethodPost, base+"/investments", bob, map[string]interface{}{"amount": "1"})
	assert.Equal(t, "WAL_007", resp.ErrorCode)
	resp = s.call(http.MethodPost, base+"/investments", mallory, map[string]interface{}{"amount": "1"})
	assert.Equal(t, "AUTH_001", resp.ErrorCode)

	resp = s.call(http.MethodDelete, base+"/emergency-pause", alice, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp = s.call(http.MethodPost, base+"/investments", bob, map[string]interface{}{"amount": "1"})
	require.Equal(t, http.StatusCreated, resp.Status)

	// The report aggregates everything above.
	resp = s.call(http.MethodGet, base+"/report", bob, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	var report domain.ComprehensiveReport
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	assert.Equal(t, "301", report.TotalBalance.String())
	assert.Equal(t, "12", report.TotalYield.String())
	assert.Len(t, report.Guardians, 2)
	assert.Len(t, report.InvestmentHistory, 4)
	assert.Len(t, report.InstitutionPayments, 1)
	assert.Empty(t, report.ActiveInvestmentPlans)
	assert.True(t, report.IsOldEnoughToSpend)
	assert.False(t, report.IsEmergencyPaused)
	assert.Equal(t, int64(18), report.AgeYears)
	assert.Equal(t, int64(3010), report.ProgressBps)
}

func TestHealth(t *testing.T) {
	cfg := baseConfig()
	mr := withRedis(t, cfg)
	s := newTestServer(t, cfg)

	resp := s.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.Status)

	mr.Close()
	resp = s.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
}

func TestRateLimit(t *testing.T) {
	cfg := baseConfig()
	withRedis(t, cfg)
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Requests: 3, Window: time.Minute}
	s := newTestServer(t, cfg)

	alice := s.signup("alice")
	child := s.openWallet(alice) // first request of the window

	for i := 0; i < 2; i++ {
		resp := s.call(http.MethodGet, "/api/v1/children/"+child, alice, nil)
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
	}

	resp := s.call(http.MethodGet, "/api/v1/children/"+child, alice, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.Status)
	assert.Equal(t, "RATE_001", resp.ErrorCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestConcurrentDeposits(t *testing.T) {
	s := newTestServer(t, baseConfig())

	alice := s.signup("alice")
	child := s.openWallet(alice)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, s.server.URL+"/api/v1/children/"+child+"/investments",
				strings.NewReader(`{"amount":"10"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+alice)
			// Half the workers share a key, so it lands once.
			if i%2 == 0 {
				req.Header.Set("Idempotency-Key", "shared")
			}
			resp, err := s.server.Client().Do(req)
			if err == nil {
				resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "110", s.balance(alice, child))
}

func TestConcurrentPaymentsNeverOverdraw(t *testing.T) {
	s := newTestServer(t, baseConfig())

	alice := s.signup("alice")
	child := s.openWallet(alice)
	base := "/api/v1/children/" + child

	require.Equal(t, http.StatusCreated, s.call(http.MethodPost, base+"/investments", alice, map[string]interface{}{"amount": "100"}).Status)
	require.Equal(t, http.StatusCreated, s.call(http.MethodPost, base+"/institutions", alice, map[string]string{
		"address": "clinic-1", "name": "Clinic", "institution_type": "HEALTHCARE",
	}).Status)
	s.clock.Advance(8 * domain.SecondsPerYear)

	var ok atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, s.server.URL+base+"/payments",
				strings.NewReader(`{"institution":"clinic-1","amount":"30","purpose":"Checkup"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+alice)
			resp, err := s.server.Client().Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusCreated {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), ok.Load())
	assert.Equal(t, "10", s.balance(alice, child))
}

func TestLiveEvents(t *testing.T) {
	s := newTestServer(t, baseConfig())

	alice := s.signup("alice")
	child := s.openWallet(alice)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/api/v1/children/" + child + "/events?access_token=" + alice
	conn, _, err := ws.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow() //nolint:errcheck

	require.Eventually(t, func() bool { return s.app.Hub().ClientCount(child) == 1 }, 2*time.Second, 10*time.Millisecond)

	resp := s.call(http.MethodPost, "/api/v1/children/"+child+"/investments", alice, map[string]interface{}{"amount": "5"})
	require.Equal(t, http.StatusCreated, resp.Status)

	_, msg, err := conn.Read(ctx)
	require.NoError(t, err)

	var ev domain.WalletEvent
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "investment_created", ev.Type)
	assert.Equal(t, child, ev.ChildID)
	assert.Equal(t, "alice", ev.Actor)
}

func TestWebhookNotifications(t *testing.T) {
	type delivery struct {
		signature string
		body      []byte
	}
	received := make(chan delivery, 16)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		received <- delivery{signature: r.Header.Get(service.SignatureHeader), body: b}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	cfg := baseConfig()
	cfg.Webhook = config.WebhookConfig{Enabled: true, URL: hook.URL, Secret: "whsec", Timeout: time.Second}
	s := newTestServer(t, cfg, app.WithHTTPClient(hook.Client()))

	alice := s.signup("alice")
	child := s.openWallet(alice)

	signer := service.NewHMACSigner("whsec")
	select {
	case d := <-received:
		assert.True(t, signer.Verify(d.body, d.signature))

		var ev domain.WalletEvent
		require.NoError(t, json.Unmarshal(d.body, &ev))
		assert.Equal(t, child, ev.ChildID)
	case <-time.After(3 * time.Second):
		t.Fatal("webhook not delivered")
	}
}
