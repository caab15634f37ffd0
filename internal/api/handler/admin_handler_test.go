package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoplite/storefront/internal/core/ports"
)

type stubStatsService struct {
	stats ports.DashboardStats
}

func (s *stubStatsService) Dashboard(_ context.Context) (*ports.DashboardStats, error) {
	out := s.stats
	return &out, nil
}

func TestAdminHandler_Stats(t *testing.T) {
	e := newEchoWithValidator()
	handler := NewAdminHandler(&stubStatsService{stats: ports.DashboardStats{
		TotalProducts: 12,
		TotalOrders:   34,
		TotalUsers:    5,
		TotalRevenue:  1234.56,
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	// The dashboard consumes these exact camelCase keys.
	for key, want := range map[string]float64{
		"totalProducts": 12,
		"totalOrders":   34,
		"totalUsers":    5,
		"totalRevenue":  1234.56,
	} {
		got, ok := resp[key].(float64)
		if !ok || got != want {
			t.Errorf("key %q: expected %v, got %v", key, want, resp[key])
		}
	}
}
