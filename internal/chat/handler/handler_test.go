package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"saarthi/internal/chat"
)

// scriptedService returns a fixed result, or panics when told to.
type scriptedService struct {
	result    chat.Result
	panicWith any
	lastReq   chat.Request
}

func (s *scriptedService) Handle(_ context.Context, req chat.Request) chat.Result {
	s.lastReq = req
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.result
}

func TestChatReturnsPipelineResult(t *testing.T) {
	svc := &scriptedService{result: chat.Result{
		Response:         "Based on the information you provided, I found 1 scheme(s) you may be eligible for: **Orunodoi**!",
		DetectedLanguage: "English",
		IsRuleBased:      true,
	}}
	router := newChatRouter(svc, false)

	rec := postChat(router, `{"message": "I am a woman from Assam"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Response         string `json:"response"`
		DetectedLanguage string `json:"detected_language"`
		IsRuleBased      bool   `json:"is_rule_based"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode chat response: %v", err)
	}
	if !strings.Contains(body.Response, "**Orunodoi**") {
		t.Fatalf("expected scheme name in response, got %q", body.Response)
	}
	if body.DetectedLanguage != "English" || !body.IsRuleBased {
		t.Fatalf("unexpected response envelope: %+v", body)
	}
	if svc.lastReq.Message != "I am a woman from Assam" {
		t.Fatalf("service received wrong message: %q", svc.lastReq.Message)
	}
}

func TestChatCarriesConversationContext(t *testing.T) {
	svc := &scriptedService{}
	router := newChatRouter(svc, false)

	rec := postChat(router, `{
		"message": "what documents do I need?",
		"conversationHistory": [{"role": "user", "content": "earlier"}],
		"lastEligibleSchemes": [{"id": "orunodoi", "name": "Orunodoi", "description": "", "documents": null, "steps": null, "eligibility": {}}]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.lastReq.LastEligible) != 1 || svc.lastReq.LastEligible[0].ID != "orunodoi" {
		t.Fatalf("expected prior eligible schemes to reach the service, got %+v", svc.lastReq.LastEligible)
	}
}

func TestChatRejectsMissingMessage(t *testing.T) {
	router := newChatRouter(&scriptedService{}, false)

	for name, payload := range map[string]string{
		"empty body field": `{"message": ""}`,
		"absent field":     `{}`,
	} {
		rec := postChat(router, payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}

		var body struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: failed to decode error: %v", name, err)
		}
		if body.Error != "bad_request" {
			t.Fatalf("%s: expected bad_request, got %q", name, body.Error)
		}
		if body.Description != "message is required" {
			t.Fatalf("%s: expected message is required, got %q", name, body.Description)
		}
	}
}

func TestChatRejectsOverlongMessage(t *testing.T) {
	router := newChatRouter(&scriptedService{}, false)

	long := strings.Repeat("a", maxMessageLength+1)
	rec := postChat(router, `{"message": "`+long+`"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for overlong message, got %d", rec.Code)
	}
}

func TestChatRejectsMalformedJSON(t *testing.T) {
	router := newChatRouter(&scriptedService{}, false)

	rec := postChat(router, `{"message": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestChatPanicBecomesInternalError(t *testing.T) {
	router := newChatRouter(&scriptedService{panicWith: "boom"}, true)

	rec := postChat(router, `{"message": "hello"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after pipeline panic, got %d", rec.Code)
	}

	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if body.Error != "internal_error" {
		t.Fatalf("expected internal_error, got %q", body.Error)
	}
	if body.Detail != "" {
		t.Fatalf("production responses must not leak detail, got %q", body.Detail)
	}
}

func postChat(router http.Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newChatRouter(svc Service, production bool) http.Handler {
	router := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), production).Register(router)
	return router
}
