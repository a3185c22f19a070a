package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wellmind-ai/wellmind-backend/internal/api/handlers"
	"github.com/wellmind-ai/wellmind-backend/internal/models"
	"github.com/wellmind-ai/wellmind-backend/internal/services"
	"github.com/wellmind-ai/wellmind-backend/internal/utils"
)

type fakeLogService struct {
	lastCategory models.Category
	lastUserID   string
	lastInput    services.AppendInput
	lastCount    int64
	entries      []models.LogEntry
	err          error
}

func (s *fakeLogService) Append(ctx context.Context, category models.Category, userID string, in services.AppendInput) (*models.LogEntry, error) {
	s.lastCategory = category
	s.lastUserID = userID
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &models.LogEntry{UserID: userID, Amount: in.Amount, Timestamp: time.Now().UTC()}, nil
}

func (s *fakeLogService) Recent(ctx context.Context, category models.Category, userID string, count int64) ([]models.LogEntry, error) {
	s.lastCategory = category
	s.lastUserID = userID
	s.lastCount = count
	return s.entries, s.err
}

func (s *fakeLogService) ByRange(ctx context.Context, category models.Category, userID string, start, end time.Time) ([]models.LogEntry, error) {
	s.lastCategory = category
	s.lastUserID = userID
	return s.entries, s.err
}

func TestAppendLogEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &fakeLogService{}
		r := newTestRouter(&fakeChatService{}, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/logs/hydration", strings.NewReader(`{"amount": 500}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if svc.lastCategory != models.CategoryHydration || svc.lastInput.Amount != 500 {
			t.Errorf("service got category=%q input=%+v", svc.lastCategory, svc.lastInput)
		}
		if svc.lastUserID != "demo_user_1" {
			t.Errorf("expected demo identity, got %q", svc.lastUserID)
		}

		var resp handlers.AppendLogResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if !resp.Success {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("unknown category is a 400", func(t *testing.T) {
		t.Parallel()

		svc := &fakeLogService{err: utils.E(utils.CodeInvalidCategory, "LogService.Append", "Invalid log category: steps", nil)}
		r := newTestRouter(&fakeChatService{}, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/logs/steps", strings.NewReader(`{"amount": 1}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("write failure is a 500 with a safe message", func(t *testing.T) {
		t.Parallel()

		svc := &fakeLogService{err: utils.E(utils.CodeWriteFailed, "LogService.Append", "Failed to log hydration. Please try again.", nil)}
		r := newTestRouter(&fakeChatService{}, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/logs/hydration", strings.NewReader(`{"amount": 500}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
		var resp handlers.APIError
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Error != "Failed to log hydration. Please try again." {
			t.Errorf("error = %q", resp.Error)
		}
	})
}

func TestRecentLogsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("forwards the count", func(t *testing.T) {
		t.Parallel()

		svc := &fakeLogService{entries: []models.LogEntry{{UserID: "demo_user_1", Amount: 250}}}
		r := newTestRouter(&fakeChatService{}, svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs/hydration/recent?count=3", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if svc.lastCount != 3 {
			t.Errorf("count = %d", svc.lastCount)
		}

		var resp handlers.ListLogsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Logs) != 1 {
			t.Errorf("logs = %+v", resp.Logs)
		}
	})

	t.Run("rejects a non-numeric count", func(t *testing.T) {
		t.Parallel()

		r := newTestRouter(&fakeChatService{}, &fakeLogService{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs/mood/recent?count=lots", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestRangeLogsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("requires RFC3339 bounds", func(t *testing.T) {
		t.Parallel()

		r := newTestRouter(&fakeChatService{}, &fakeLogService{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs/sleep/range?from=yesterday&to=today", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := &fakeLogService{entries: []models.LogEntry{{Hours: 8}}}
		r := newTestRouter(&fakeChatService{}, svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/logs/sleep/range?from=2026-08-01T00:00:00Z&to=2026-08-28T00:00:00Z", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if svc.lastCategory != models.CategorySleep {
			t.Errorf("category = %q", svc.lastCategory)
		}
	})
}
