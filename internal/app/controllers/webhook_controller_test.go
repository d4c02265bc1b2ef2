package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/repositories"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/pkg/callstate"
	"github.com/admitly/counselor/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repos := repositories.NewRepositories()
	lgr := logger.Nop()
	assistant := services.NewAssistantService(repos.CourseRepository, 20, services.AssistantSettings{}, lgr)
	voiceLogs := services.NewVoiceLogService(repos.VoiceCallLogRepository, lgr)
	ctrl := NewWebhookController(services.NewWebhookService(assistant, voiceLogs, callstate.NewTracker(), nil, lgr), lgr)

	r := gin.New()
	r.POST("/webhook", ctrl.HandleWebhook)
	r.GET("/calls/:sessionId/status", ctrl.GetCallStatus)
	return r
}

func TestHandleWebhook_MalformedBody(t *testing.T) {
	r := newWebhookRouter()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"type":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleWebhook_EmptyCatalogFallsBack(t *testing.T) {
	r := newWebhookRouter()
	body := `{"type":"function-call","message":{"function_call":{"name":"searchCourses","arguments":{"category":"all"}}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.WebhookResultResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.Result, "I couldn't find any courses") {
		t.Errorf("result = %q", resp.Result)
	}
}

func TestGetCallStatus_UnknownSession(t *testing.T) {
	r := newWebhookRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calls/nope/status", nil))

	var resp dto.CallStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "idle" || resp.Known || resp.SessionID != "nope" {
		t.Errorf("resp = %+v", resp)
	}
}
