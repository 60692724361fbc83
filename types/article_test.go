package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID("https://example.com/story")
	b := GenerateID("https://example.com/story")
	if a != b {
		t.Errorf("same URL must hash identically: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %d", len(a))
	}
	if a == GenerateID("https://example.com/other") {
		t.Error("different URLs should not collide")
	}
}

func TestPipelineResultOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(&PipelineResult{Error: "No news found."})
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if got != `{"error":"No news found."}` {
		t.Errorf("terminal error payload should carry only the error: %s", got)
	}

	b, err = json.Marshal(&PipelineResult{Summary: "s", Followups: []string{"Why?"}})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "error") {
		t.Errorf("successful payload should omit error: %s", b)
	}
	if !strings.Contains(string(b), "followup_questions") {
		t.Errorf("followups field name: %s", b)
	}
}
