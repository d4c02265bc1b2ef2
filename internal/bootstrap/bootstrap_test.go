package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "test"
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "letmein"
	cfg.Scholarship.DefaultPercentage = 20
	cfg.Voice.PublicKey = "pk-test"
	cfg.Voice.ModelProvider = "openai"
	cfg.Voice.Model = "gpt-4o"
	cfg.Voice.VoiceProvider = "11labs"
	cfg.Voice.VoiceID = "21m00Tcm4TlvDq8ikWAM"
	cfg.RateLimit.WebhookRPS = 1000
	cfg.RateLimit.WebhookBurst = 1000
	cfg.Logging.Format = "json"
	return cfg
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	deps, err := BuildDependencies(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	t.Cleanup(deps.Close)
	return &testServer{t: t, router: SetupRouter(cfg, deps, zerolog.Nop())}
}

func (s *testServer) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestCourseRoutes(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodGet, "/api/courses", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if all := decode[[]models.Course](t, w); len(all) != 15 {
		t.Fatalf("courses = %d, want 15", len(all))
	}

	w = s.do(http.MethodGet, "/api/courses/search?q=physics", nil, nil)
	found := decode[[]models.Course](t, w)
	if len(found) != 2 || found[0].Name != "BSc Physics" || found[1].Name != "MSc Physics" {
		t.Errorf("search physics = %+v", found)
	}

	w = s.do(http.MethodGet, "/api/courses/search?q=zzz", nil, nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty search = %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/courses/search", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("search without q = %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Error.Message != "Query parameter required" {
		t.Errorf("message = %q", resp.Error.Message)
	}

	w = s.do(http.MethodGet, "/api/courses/category/it", nil, nil)
	it := decode[[]models.Course](t, w)
	names := make([]string, len(it))
	for i, c := range it {
		names[i] = c.Name
	}
	joined := strings.Join(names, "|")
	for _, want := range []string{"BSc IT", "BCA", "MSc IT", "MCA"} {
		if !strings.Contains(joined, want) {
			t.Errorf("it category missing %q: %v", want, names)
		}
	}

	w = s.do(http.MethodGet, "/api/courses/3", nil, nil)
	if c := decode[models.Course](t, w); w.Code != http.StatusOK || c.Name != "BCA" {
		t.Errorf("course 3 = %d %+v", w.Code, c)
	}

	w = s.do(http.MethodGet, "/api/courses/999", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("course 999 = %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.Error.Message != "Course not found" {
		t.Errorf("message = %q", resp.Error.Message)
	}

	if w = s.do(http.MethodGet, "/api/courses/abc", nil, nil); w.Code != http.StatusBadRequest {
		t.Errorf("course abc = %d", w.Code)
	}
}

func TestCreateCourseRequiresAdmin(t *testing.T) {
	s := newTestServer(t, testConfig())
	body := map[string]any{"name": "BSc Data Science", "duration": "3 yrs", "annualFee": 125000, "category": "undergraduate"}

	if w := s.do(http.MethodPost, "/api/courses", body, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create = %d", w.Code)
	}

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d", w.Code)
	}

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "letmein"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	token := decode[dto.TokenResponse](t, w)
	authz := map[string]string{"Authorization": "Bearer " + token.AccessToken}

	w = s.do(http.MethodPost, "/api/courses", map[string]any{"name": "X"}, authz)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid create = %d", w.Code)
	}

	w = s.do(http.MethodPost, "/api/courses", body, authz)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	created := decode[models.Course](t, w)
	if created.ID != 16 || created.Term.TotalYears() != 3 {
		t.Errorf("created = %+v", created)
	}

	w = s.do(http.MethodGet, "/api/courses/16", nil, nil)
	if got := decode[models.Course](t, w); got.Name != "BSc Data Science" || got.AnnualFee != 125000 {
		t.Errorf("get created = %+v", got)
	}
}

func TestScholarshipRoute(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodPost, "/api/scholarship/calculate", map[string]string{"courseName": "BBA", "duration": "3 yrs"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d %s", w.Code, w.Body.String())
	}
	got := decode[models.ScholarshipCalculation](t, w)
	want := models.ScholarshipCalculation{OriginalFee: 112000, FeeAfterScholarship: 89600, AnnualSavings: 22400, TotalSavings: 67200, ScholarshipPercentage: 20, Duration: 3}
	if got != want {
		t.Errorf("calc = %+v, want %+v", got, want)
	}

	w = s.do(http.MethodPost, "/api/scholarship/calculate", map[string]string{"courseName": "Dentistry", "duration": "3 yrs"}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown course = %d", w.Code)
	}

	w = s.do(http.MethodPost, "/api/scholarship/calculate", map[string]any{"courseName": "BBA", "scholarshipPercentage": 150}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("pct 150 = %d", w.Code)
	}

	w = s.do(http.MethodPost, "/api/scholarship/calculate", map[string]string{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing course name = %d", w.Code)
	}
}

func TestWebhookFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodPost, "/api/vapi/webhook", map[string]any{"type": "call-start", "call": map[string]string{"id": "sess-9"}}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("call-start = %d", w.Code)
	}
	if resp := decode[dto.SuccessResponse](t, w); !resp.Success {
		t.Errorf("call-start body = %s", w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/calls/sess-9/status", nil, nil)
	if st := decode[dto.CallStatusResponse](t, w); st.Status != "connected" || !st.Known {
		t.Errorf("status = %+v", st)
	}

	w = s.do(http.MethodPost, "/api/vapi/webhook", `{
		"type": "function-call",
		"call": {"id": "sess-9"},
		"message": {"function_call": {"name": "getCourseInfo", "arguments": "{\"courseName\": \"MSc IT\"}"}}
	}`, nil)
	result := decode[dto.WebhookResultResponse](t, w)
	if !strings.HasPrefix(result.Result, "I found information about MSc IT. It's a 2 yrs program") {
		t.Errorf("result = %q", result.Result)
	}

	w = s.do(http.MethodPost, "/api/vapi/webhook", map[string]any{
		"type": "call-ended",
		"call": map[string]any{"id": "sess-9", "transcript": "Tell me about MSc IT", "duration": 63},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("call-ended = %d", w.Code)
	}

	w = s.do(http.MethodGet, "/api/voice-logs?sessionId=sess-9", nil, nil)
	logs := decode[[]models.VoiceCallLog](t, w)
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(logs))
	}
	if logs[0].Duration != 63 || len(logs[0].CoursesDiscussed) != 1 || logs[0].CoursesDiscussed[0] != "MSc IT" {
		t.Errorf("log = %+v", logs[0])
	}

	w = s.do(http.MethodGet, "/api/voice-logs/1", nil, nil)
	if got := decode[models.VoiceCallLog](t, w); got.SessionID != "sess-9" {
		t.Errorf("log 1 = %+v", got)
	}

	if w = s.do(http.MethodGet, "/api/voice-logs", nil, nil); w.Code != http.StatusBadRequest {
		t.Errorf("voice-logs without session = %d", w.Code)
	}
	if w = s.do(http.MethodGet, "/api/calls/sess-9/status", nil, nil); decode[dto.CallStatusResponse](t, w).Status != "ended" {
		t.Errorf("status after end = %s", w.Body.String())
	}
}

func TestWebhookSecretAndRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Voice.WebhookSecret = "hook-secret"
	cfg.RateLimit.WebhookRPS = 1
	cfg.RateLimit.WebhookBurst = 1
	s := newTestServer(t, cfg)
	event := map[string]string{"type": "speech-start"}

	if w := s.do(http.MethodPost, "/api/vapi/webhook", event, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing secret = %d", w.Code)
	}
	// The rejected request above already spent the only token.
	w := s.do(http.MethodPost, "/api/vapi/webhook", event, map[string]string{"X-Vapi-Secret": "hook-secret"})
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("over limit = %d", w.Code)
	}
}

func TestAssistantConfigPingAndMetrics(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodGet, "/api/assistant/config", nil, nil)
	cfg := decode[dto.AssistantConfig](t, w)
	if cfg.PublicKey != "pk-test" || cfg.Voice.VoiceID != "21m00Tcm4TlvDq8ikWAM" || len(cfg.Functions) != 3 {
		t.Errorf("assistant config = %+v", cfg)
	}

	w = s.do(http.MethodGet, "/ping", nil, nil)
	if w.Code != http.StatusOK || decode[dto.PingResponse](t, w).Message != "pong" {
		t.Errorf("ping = %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/metrics", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics = %d", w.Code)
	}
	for _, name := range []string{"counselor_catalog_courses 15", "counselor_active_calls 0", "counselor_uptime_seconds"} {
		if !strings.Contains(w.Body.String(), name) {
			t.Errorf("metrics missing %q", name)
		}
	}
}

func TestWebhookMetricsLabelsStayBounded(t *testing.T) {
	s := newTestServer(t, testConfig())

	for _, typ := range []string{"call-start", "made-up-1", "made-up-2"} {
		w := s.do(http.MethodPost, "/api/vapi/webhook", map[string]any{"type": typ, "call": map[string]string{"id": "m-1"}}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s = %d %s", typ, w.Code, w.Body.String())
		}
	}

	body := s.do(http.MethodGet, "/metrics", nil, nil).Body.String()
	for _, want := range []string{
		`counselor_webhook_events_total{type="call-start"} 1`,
		`counselor_webhook_events_total{type="unknown"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
	if strings.Contains(body, "made-up") {
		t.Error("client-supplied event type leaked into metric labels")
	}
}
