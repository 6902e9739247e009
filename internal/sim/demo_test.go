package sim

import (
	"context"
	"strings"
	"testing"
	"time"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
)

func runDemo(t *testing.T, name string) *collectWriter {
	t.Helper()
	cw := &collectWriter{}
	d, err := NewDemo(name, config.Default(), catalog.Default(), NewTracer(cw, nil).WithClock(fixedClock()), 1)
	if err != nil {
		t.Fatalf("NewDemo(%s): %v", name, err)
	}
	for i := 0; i < 1000; i++ {
		if d.Step(100 * time.Millisecond) {
			return cw
		}
	}
	t.Fatalf("%s: scenario did not finish", name)
	return nil
}

func TestDemoScenariosFinish(t *testing.T) {
	for _, name := range Scenarios {
		t.Run(name, func(t *testing.T) {
			cw := runDemo(t, name)
			if len(cw.events) == 0 {
				t.Fatalf("no trace events")
			}
		})
	}
}

func TestDemoSecurityScript(t *testing.T) {
	msgs := runDemo(t, "security").messages(SimSecurity)
	joined := strings.Join(msgs, "\n")
	for _, want := range []string{
		"Verifying HMAC Signature...",
		"Duplicate detected (evt_12345). Returning 200 OK without processing.",
		"Signature verification skipped (Insecure)",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %v", want, msgs)
		}
	}
}

func TestDemoQuizReview(t *testing.T) {
	msgs := runDemo(t, "quiz").messages(SimQuiz)
	joined := strings.Join(msgs, "\n")
	if !strings.Contains(joined, "Score 3/4: Great effort! Review the answers below.") {
		t.Fatalf("unexpected quiz trace: %v", msgs)
	}
	if !strings.Contains(joined, "Q4 wrong:") {
		t.Fatalf("expected the last answer to be reviewed as wrong: %v", msgs)
	}
}

func TestDemoUnknownScenario(t *testing.T) {
	if _, err := NewDemo("nope", config.Default(), catalog.Default(), nil, 1); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDemoRejectsZeroFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Timings.TUIFrame = 0
	if _, err := NewDemo("lifecycle", cfg, catalog.Default(), nil, 1); err == nil {
		t.Fatalf("expected error for a zero frame period")
	}
}

func TestDemoRunHonorsCancel(t *testing.T) {
	d, err := NewDemo("architecture", config.Default(), catalog.Default(), nil, 1)
	if err != nil {
		t.Fatalf("NewDemo: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
