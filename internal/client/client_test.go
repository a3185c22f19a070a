package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
)

func TestChatSendsIdentityAndContextFlag(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("X-User-Id"); got != "user-7" {
			t.Errorf("X-User-Id = %q", got)
		}

		var req struct {
			Message        string `json:"message"`
			IncludeContext bool   `json:"include_context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Message != "hello" || !req.IncludeContext {
			t.Errorf("request = %+v", req)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "hi there"})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "user-7")
	reply, err := c.Chat(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "hi there" {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatSurfacesServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "AI service not configured. Please set OPENAI_API_KEY.",
		})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "")
	_, err := c.Chat(context.Background(), "hello")
	if err == nil || err.Error() != "AI service not configured. Please set OPENAI_API_KEY." {
		t.Fatalf("err = %v", err)
	}
}

func TestAppendLogTargetsCategoryRoute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/logs/workout" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var in services.AppendInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatal(err)
		}
		if in.Type != "cardio" || in.Duration != 30 {
			t.Errorf("input = %+v", in)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "abc"})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "user-7")
	err := c.AppendLog(context.Background(), models.CategoryWorkout, services.AppendInput{Type: "cardio", Duration: 30})
	if err != nil {
		t.Fatalf("AppendLog: %v", err)
	}
}

func TestUnreachableServer(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1", "")
	if _, err := c.Chat(context.Background(), "hello"); err == nil {
		t.Fatal("expected a transport error")
	}
}
