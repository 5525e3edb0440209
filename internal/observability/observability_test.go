package observability

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/labtrack/labtrack-service/internal/config"
	"github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "chatty"})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("unknown level should fall back to info")
	}
	logger, err = NewLogger(config.LoggerConfig{Level: "DEBUG"})
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/assets", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/assets", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/assets", "POST", "CONFLICT")

	snap := m.Snapshot()
	if len(snap.Requests) != 1 || snap.Requests[0].Count != 2 {
		t.Fatalf("requests = %+v", snap.Requests)
	}
	if len(snap.Latency) != 1 || snap.Latency[0].MeanMS != 20 {
		t.Errorf("latency = %+v", snap.Latency)
	}
	if len(snap.Errors) != 1 || snap.Errors[0].Key != "POST /api/assets CONFLICT" {
		t.Errorf("errors = %+v", snap.Errors)
	}

	var nilMetrics *Metrics
	nilMetrics.RecordRequest("/", "GET", 200, 0)
	if got := nilMetrics.Snapshot(); len(got.Requests) != 0 {
		t.Error("nil metrics should be inert")
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"domain", errorutil.NewConflict("dup", nil), 409},
		{"fiber", fiber.ErrNotFound, 404},
		{"plain", errors.New("boom"), 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "missing" {
			return errorutil.NewNotFound("Item", nil)
		}
		return c.SendString("ok")
	})

	for _, path := range []string{"/items/1", "/items/2", "/items/missing"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	if logs.FilterMessage("request").Len() != 3 {
		t.Errorf("logged %d requests", logs.FilterMessage("request").Len())
	}
	if logs.FilterLevelExact(zap.WarnLevel).Len() != 1 {
		t.Error("404 should log at warn")
	}
	snap := metrics.Snapshot()
	want := map[string]int64{"GET /items/:id 200": 2, "GET /items/:id 404": 1}
	for _, rc := range snap.Requests {
		if want[rc.Key] != rc.Count {
			t.Errorf("%s = %d", rc.Key, rc.Count)
		}
	}
}
