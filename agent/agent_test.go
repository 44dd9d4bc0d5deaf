package agent

import (
	"strings"
	"testing"

	"github.com/wealthsense/wealthsense"
)

func TestBuildPrompt(t *testing.T) {
	l := wealthsense.DefaultLedger()

	prompt, err := buildPrompt(l)
	if err != nil {
		t.Fatal(err)
	}

	// The prompt carries the flattened transactions and the net worth.
	for _, want := range []string{
		"financial advisor",
		"Monthly Salary Deposit",
		"Main Checking",
		l.NetWorth().String(),
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt does not contain %q", want)
		}
	}
}

func TestFromResponse(t *testing.T) {
	// An empty model answer is not an error: it gets its own message.
	if got := fromResponse(""); got != NoInsights {
		t.Errorf("fromResponse(empty) = %q, want NoInsights", got)
	}
	if got := fromResponse("All good."); got != "All good." {
		t.Errorf("fromResponse = %q, want the model text unchanged", got)
	}
	if NoInsights == Fallback {
		t.Error("empty-response and error messages must differ")
	}
}

func TestBuildPrompt_EmptyLedger(t *testing.T) {
	prompt, err := buildPrompt(wealthsense.NewLedger())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(prompt, "null") && !strings.Contains(prompt, "[]") {
		t.Errorf("empty ledger should still produce a prompt, got %q", prompt)
	}
}
