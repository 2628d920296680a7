package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/nagulan1506/real-estate-app/ai"
)

func offlineAssistant() *ai.Service {
	return ai.NewService("", demoBackend())
}

func TestLocalityInsightsRequiresLocation(t *testing.T) {
	ac := NewAIController(offlineAssistant())

	c, rec := newJSONContext(t, http.MethodPost, "/api/locality-insights", `{}`)
	if err := ac.LocalityInsights(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code %d", rec.Code)
	}
}

func TestLocalityInsightsFallback(t *testing.T) {
	ac := NewAIController(offlineAssistant())

	c, rec := newJSONContext(t, http.MethodPost, "/api/locality-insights",
		`{"location":"Adyar, Chennai"}`)
	if err := ac.LocalityInsights(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["insight"], "Adyar") {
		t.Errorf("insight = %q", body["insight"])
	}
}

func TestChatRequiresMessage(t *testing.T) {
	ac := NewAIController(offlineAssistant())

	c, rec := newJSONContext(t, http.MethodPost, "/api/chat", `{"message":""}`)
	if err := ac.Chat(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code %d", rec.Code)
	}
}

func TestChatFallbackOverDemoCatalog(t *testing.T) {
	ac := NewAIController(offlineAssistant())

	c, rec := newJSONContext(t, http.MethodPost, "/api/chat",
		`{"message":"Do you have villas?"}`)
	if err := ac.Chat(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["reply"], "villas available") {
		t.Errorf("reply = %q", body["reply"])
	}
}
