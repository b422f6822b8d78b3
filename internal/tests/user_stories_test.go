package tests

// User story tests for the lead-capture site. Each story drives the real HTTP
// router over a socket and then inspects the result the way an operator would.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/api"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/clock"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/ids"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/operator"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/service/leads"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

// TestContext holds shared test infrastructure
type TestContext struct {
	Store    *store.Memory
	Clock    *clock.FakeClock
	Server   *httptest.Server
	Operator *operator.Operator
	Dir      string
	Ctx      context.Context
	Cancel   context.CancelFunc
}

func setupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mem := store.NewMemory()
	clk := clock.NewFakeClock(time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC))
	svc := leads.NewService(mem, clk, ids.UUID{})
	srv := httptest.NewServer(api.NewServer(config.Default().Server, svc, clk).Handler())
	dir := t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	return &TestContext{
		Store:    mem,
		Clock:    clk,
		Server:   srv,
		Operator: operator.New(mem, clk, operator.Options{ExportDir: dir}),
		Dir:      dir,
		Ctx:      ctx,
		Cancel:   cancel,
	}
}

func (tc *TestContext) Cleanup() {
	tc.Cancel()
	tc.Server.Close()
}

func (tc *TestContext) post(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(tc.Ctx, http.MethodPost, tc.Server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// =============================================================================
// US-001: Newsletter signup reaches the operator export
// =============================================================================

func TestUS001_NewsletterSignupToExport(t *testing.T) {
	tc := setupTestContext(t)
	defer tc.Cleanup()

	status, body := tc.post(t, "/api/newsletter", map[string]any{
		"email": "  Ada@Example.com ", "first_name": "Ada", "region": "UK",
	})
	require.Equal(t, http.StatusOK, status)
	subID, _ := body["subscription_id"].(string)
	require.NotEmpty(t, subID)

	tc.Clock.Advance(time.Minute)
	status, body = tc.post(t, "/api/newsletter", map[string]any{"email": "ada@example.com"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already subscribed", body["error"])

	subs, err := tc.Operator.Subscribers(tc.Ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, subID, subs[0].ID)
	assert.Equal(t, "UK", subs[0].Region)

	path, err := tc.Operator.Export(tc.Ctx)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"id,email,timestamp,status\n"+subID+",ada@example.com,2025-04-01T08:00:00Z,active\n",
		string(data))
}

// =============================================================================
// US-002: Assessment and ROI visitor shows on the dashboard
// =============================================================================

func TestUS002_AssessmentAndROIOnDashboard(t *testing.T) {
	tc := setupTestContext(t)
	defer tc.Cleanup()

	status, body := tc.post(t, "/api/ai-assessment", map[string]any{
		"email":        "cto@acme.io",
		"company_name": "Acme",
		"responses": []map[string]any{
			{"question_id": 1, "answer": "We use spreadsheets", "score": 1},
			{"question_id": 2, "answer": "Some pilots", "score": 2},
		},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 37.5, body["score"])
	assert.Equal(t, "Developing", body["level"])

	status, body = tc.post(t, "/api/roi-calculator", map[string]any{
		"email": "cto@acme.io", "annual_revenue": "2500000",
		"current_efficiency": 40, "target_efficiency": 65, "implementation_cost": 75000,
	})
	require.Equal(t, http.StatusOK, status)
	results := body["results"].(map[string]any)
	assert.Equal(t, 187500.0, results["annual_savings"])
	assert.Equal(t, 4.8, results["payback_months"])

	var out strings.Builder
	require.NoError(t, tc.Operator.Dashboard(tc.Ctx, &out))
	assert.Contains(t, out.String(), "AI assessments: 1")
	assert.Contains(t, out.String(), "cto@acme.io")
	assert.Contains(t, out.String(), "Newsletter subscribers: 0")
}

// =============================================================================
// US-003: Browser preflight from the marketing site
// =============================================================================

func TestUS003_BrowserPreflight(t *testing.T) {
	tc := setupTestContext(t)
	defer tc.Cleanup()

	req, err := http.NewRequestWithContext(tc.Ctx, http.MethodOptions, tc.Server.URL+"/api/contact", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://www.orgainse.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := tc.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

// =============================================================================
// CONCURRENCY STRESS
// =============================================================================

func TestConcurrencyStress(t *testing.T) {
	tc := setupTestContext(t)
	defer tc.Cleanup()

	const visitors = 50
	var ok int64
	var wg sync.WaitGroup
	idsSeen := sync.Map{}

	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]any{
				"name":    fmt.Sprintf("Visitor %d", i),
				"email":   fmt.Sprintf("visitor%d@example.com", i),
				"message": "Tell me more",
			})
			resp, err := tc.Server.Client().Post(tc.Server.URL+"/api/contact", "application/json", bytes.NewReader(payload))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			var body map[string]string
			if resp.StatusCode == http.StatusOK && json.NewDecoder(resp.Body).Decode(&body) == nil {
				idsSeen.Store(body["contact_id"], true)
				atomic.AddInt64(&ok, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, visitors, atomic.LoadInt64(&ok))
	unique := 0
	idsSeen.Range(func(_, _ any) bool { unique++; return true })
	assert.Equal(t, visitors, unique)

	summaries, err := tc.Operator.Summaries(tc.Ctx)
	require.NoError(t, err)
	for _, s := range summaries {
		if s.Collection == domain.CollectionContacts {
			assert.EqualValues(t, visitors, s.Count)
		}
	}
	assert.Equal(t, 0, tc.Store.OpenSessions())
}
