package sorter

import (
	"context"
	"errors"
	"testing"

	"ordina/internal/application"
)

func TestGovernor_ReserveAICall_Ceiling(t *testing.T) {
	gov := NewGovernor(2, -1, 0, 0)
	ctx := context.Background()

	if err := gov.ReserveAICall(ctx); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := gov.ReserveAICall(ctx); err != nil {
		t.Fatalf("second call: %v", err)
	}

	err := gov.ReserveAICall(ctx)
	if err == nil {
		t.Fatal("third call should hit the ceiling")
	}
	if !errors.Is(err, application.ErrAILimit) {
		t.Errorf("expected ErrAILimit, got %v", err)
	}
	if gov.Calls() != 2 {
		t.Errorf("rejected call must not count, got %d", gov.Calls())
	}
}

func TestGovernor_ReserveAICall_CancelledWaitReleasesSlot(t *testing.T) {
	// A 1-per-hour limiter with the burst token spent forces a wait.
	gov := NewGovernor(5, -1, 0, 1)
	ctx := context.Background()

	if err := gov.ReserveAICall(ctx); err != nil {
		t.Fatalf("first call: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := gov.ReserveAICall(cancelled); err == nil {
		t.Fatal("expected an error from the cancelled wait")
	}
	if gov.Calls() != 1 {
		t.Errorf("cancelled reservation must be released, got %d", gov.Calls())
	}
}

func TestGovernor_CheckSize(t *testing.T) {
	gov := NewGovernor(1, 100, 0, 0)

	if err := gov.CheckSize(100); err != nil {
		t.Errorf("size at the ceiling should pass: %v", err)
	}

	err := gov.CheckSize(101)
	if err == nil {
		t.Fatal("size over the ceiling should fail")
	}
	var limitErr *application.LimitError
	if !errors.As(err, &limitErr) || limitErr.Limit != "file_bytes" {
		t.Errorf("expected file_bytes LimitError, got %v", err)
	}
}

func TestGovernor_CheckSize_NegativeDisables(t *testing.T) {
	gov := NewGovernor(1, -1, 0, 0)
	if err := gov.CheckSize(1 << 40); err != nil {
		t.Errorf("negative ceiling should accept any size: %v", err)
	}
}

func TestGovernor_Truncate(t *testing.T) {
	gov := NewGovernor(1, -1, 5, 0)

	if got := gov.Truncate("short"); got != "short" {
		t.Errorf("text at the cap should pass through, got %q", got)
	}
	if got := gov.Truncate("0123456789"); got != "01234" {
		t.Errorf("expected truncation to 5 runes, got %q", got)
	}
}

func TestGovernor_Truncate_RuneSafe(t *testing.T) {
	gov := NewGovernor(1, -1, 3, 0)
	if got := gov.Truncate("請求書控え"); got != "請求書" {
		t.Errorf("expected 3 runes, got %q", got)
	}
}

func TestGovernor_Truncate_ZeroDisables(t *testing.T) {
	gov := NewGovernor(1, -1, 0, 0)
	long := "0123456789"
	if got := gov.Truncate(long); got != long {
		t.Errorf("zero cap should pass text through, got %q", got)
	}
}
