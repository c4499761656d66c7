package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestProbe_Up(t *testing.T) {
	h := &Checker{service: "corner-api"}

	result := h.probe(context.Background(), func(ctx context.Context) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	})

	if result.Status != statusUp {
		t.Errorf("Expected status '%s', got '%s'", statusUp, result.Status)
	}
	if result.LatencyMs < 5 {
		t.Errorf("Expected latency >= 5ms, got %dms", result.LatencyMs)
	}
	if result.Error != "" {
		t.Errorf("Expected no error, got '%s'", result.Error)
	}
}

func TestProbe_Down(t *testing.T) {
	h := &Checker{service: "corner-api"}

	result := h.probe(context.Background(), func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	if result.Status != statusDown {
		t.Errorf("Expected status '%s', got '%s'", statusDown, result.Status)
	}
	if result.Error != "connection refused" {
		t.Errorf("Expected error message, got '%s'", result.Error)
	}
}

func TestProbe_Timeout(t *testing.T) {
	h := &Checker{service: "corner-api"}

	result := h.probe(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if result.Status != statusDown {
		t.Errorf("Expected status '%s', got '%s'", statusDown, result.Status)
	}
	if result.LatencyMs < checkTimeout.Milliseconds() {
		t.Errorf("Expected latency >= %dms, got %dms", checkTimeout.Milliseconds(), result.LatencyMs)
	}
}
