package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
)

// demoBackend is the catalog exactly as it runs without a database.
func demoBackend() *store.Fallback {
	return store.NewFallback(nil, store.NewStatic(), false)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("bad response body %q: %v", rec.Body.String(), err)
	}
}

func TestListPropertiesDemoMode(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/properties", "")
	if err := pc.ListProperties(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}

	var list []models.Property
	decodeBody(t, rec, &list)
	if len(list) != 8 {
		t.Fatalf("expected the 8 demo properties, got %d", len(list))
	}
}

func TestListPropertiesFiltered(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/properties?type=apartment&minPrice=5000000", "")
	if err := pc.ListProperties(c); err != nil {
		t.Fatal(err)
	}

	var list []models.Property
	decodeBody(t, rec, &list)
	if len(list) == 0 {
		t.Fatal("expected matches")
	}
	for _, p := range list {
		if p.Type != "Apartment" || p.Price < 5000000 {
			t.Errorf("filter leaked %s (%s, %d)", p.ID, p.Type, p.Price)
		}
	}
}

func TestListPropertiesIgnoresUnparsableParams(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/properties?minPrice=abc&rooms=xyz", "")
	if err := pc.ListProperties(c); err != nil {
		t.Fatal(err)
	}

	var list []models.Property
	decodeBody(t, rec, &list)
	if len(list) != 8 {
		t.Fatalf("junk params should be ignored, got %d properties", len(list))
	}
}

func TestGetProperty(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/properties/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := pc.GetProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}

	var p models.Property
	decodeBody(t, rec, &p)
	if p.ID != "p1" {
		t.Errorf("got %q", p.ID)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/properties/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := pc.GetProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code %d", rec.Code)
	}
}

func TestCreatePropertyValidation(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodPost, "/api/properties", `{"title":"x"}`)
	if err := pc.CreateProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: code %d", rec.Code)
	}

	c, rec = newJSONContext(t, http.MethodPost, "/api/properties",
		`{"title":"x","type":"Castle","location":"Chennai"}`)
	if err := pc.CreateProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad type: code %d", rec.Code)
	}
}

func TestCreatePropertyUnavailableInDemoMode(t *testing.T) {
	pc := NewPropertyController(demoBackend())

	c, rec := newJSONContext(t, http.MethodPost, "/api/properties",
		`{"title":"New Flat","type":"Apartment","location":"Adyar, Chennai","price":9000000,"rooms":2}`)
	c.Set("user_id", "agent-1")
	if err := pc.CreateProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("writes without a database should fail, code %d", rec.Code)
	}
}

func TestListAgentsAndDetail(t *testing.T) {
	agents := NewAgentController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/agents", "")
	if err := agents.ListAgents(c); err != nil {
		t.Fatal(err)
	}
	var list []models.Agent
	decodeBody(t, rec, &list)
	if len(list) != 4 {
		t.Fatalf("expected 4 demo agents, got %d", len(list))
	}

	c, rec = newJSONContext(t, http.MethodGet, "/api/agents/a1", "")
	c.SetParamNames("id")
	c.SetParamValues("a1")
	if err := agents.GetAgent(c); err != nil {
		t.Fatal(err)
	}
	var detail models.AgentDetail
	decodeBody(t, rec, &detail)
	if detail.ID != "a1" || len(detail.HandledProperties) != 3 {
		t.Fatalf("agent detail = %s with %d properties", detail.ID, len(detail.HandledProperties))
	}
}

func TestHealthReportsDemoMode(t *testing.T) {
	hc := NewHealthController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/health", "")
	if err := hc.Health(c); err != nil {
		t.Fatal(err)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status = %v", body["status"])
	}
	if body["dbConnected"] != false {
		t.Errorf("dbConnected = %v, want false", body["dbConnected"])
	}
}

func TestAdminSummaryDemoCounts(t *testing.T) {
	ac := NewAdminController(demoBackend())

	c, rec := newJSONContext(t, http.MethodGet, "/api/admin/summary", "")
	if err := ac.Summary(c); err != nil {
		t.Fatal(err)
	}

	var body map[string]int64
	decodeBody(t, rec, &body)
	if body["propCount"] != 8 || body["agentCount"] != 4 || body["userCount"] != 0 {
		t.Fatalf("summary = %v", body)
	}
}
