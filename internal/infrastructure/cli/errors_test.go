package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/clauseguard/clausectl/pkg/sdk"
)

func TestMapErrorNotFound(t *testing.T) {
	apiErr := &sdk.APIError{Status: 404, Body: `{"detail":"Contract not found"}`}
	mapped := MapError(fmt.Errorf("GET /api/v1/contracts/x: %w", apiErr))

	var cliErr *CLIError
	if !errors.As(mapped, &cliErr) {
		t.Fatalf("mapped type %T", mapped)
	}
	if cliErr.Message != "contract not found" {
		t.Errorf("Message = %q", cliErr.Message)
	}
	if cliErr.Hint == "" {
		t.Error("expected a hint")
	}
	if !errors.As(mapped, &apiErr) {
		t.Error("original error not preserved in chain")
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	if got := MapError(nil); got != nil {
		t.Errorf("MapError(nil) = %v", got)
	}

	plain := errors.New("connection refused")
	if got := MapError(plain); got != plain {
		t.Errorf("MapError(plain) = %v", got)
	}

	server := &sdk.APIError{Status: 500, Body: "boom"}
	if got := MapError(server); got != error(server) {
		t.Errorf("500 was mapped: %v", got)
	}
}

func TestRenderGaugeWidth(t *testing.T) {
	for _, score := range []float64{0, 3, 7.2, 10, 15, -1} {
		bar := renderGauge(score)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled+empty != 20 {
			t.Errorf("score %.1f: %d filled + %d empty, want 20 total", score, filled, empty)
		}
	}
	if strings.Count(renderGauge(10), "█") != 20 {
		t.Error("score 10 should fill the whole gauge")
	}
	if strings.Count(renderGauge(0), "█") != 0 {
		t.Error("score 0 should leave the gauge empty")
	}
	if strings.Count(renderGauge(15), "█") != 20 {
		t.Error("out-of-range score should clamp to full")
	}
}

func TestRenderEmphasisKeepsText(t *testing.T) {
	got := renderEmphasis("Vendor shall <em>indemnify</em> Customer")
	if !strings.Contains(got, "indemnify") {
		t.Errorf("emphasized text lost: %q", got)
	}
	if strings.Contains(got, "<em>") {
		t.Errorf("markup leaked into output: %q", got)
	}
}

func TestJoinTypes(t *testing.T) {
	got := joinTypes(nil)
	if got != "" {
		t.Errorf("joinTypes(nil) = %q", got)
	}
}
