package stylist

import (
	"testing"

	"ai-stylist-be/pkg/store"
)

func TestAdvanceSequence(t *testing.T) {
	// Exactly three answers walk ASK_BODY -> ASK_HEIGHT -> ASK_SKIN -> DONE,
	// each landing in its own profile column.
	steps := []struct {
		step      string
		wantField string
		wantReply string
		wantNext  string
	}{
		{store.StepAskBody, "body_shape", QuestionHeight, store.StepAskHeight},
		{store.StepAskHeight, "height", QuestionSkinTone, store.StepAskSkin},
		{store.StepAskSkin, "skin_tone", CompletionMessage, store.StepDone},
	}

	for _, tt := range steps {
		field, reply, next, ok := Advance(tt.step)
		if !ok {
			t.Fatalf("Advance(%q) not ok", tt.step)
		}
		if field != tt.wantField {
			t.Errorf("Advance(%q) field = %q, want %q", tt.step, field, tt.wantField)
		}
		if reply != tt.wantReply {
			t.Errorf("Advance(%q) reply = %q, want %q", tt.step, reply, tt.wantReply)
		}
		if next != tt.wantNext {
			t.Errorf("Advance(%q) next = %q, want %q", tt.step, next, tt.wantNext)
		}
	}
}

func TestAdvanceInactive(t *testing.T) {
	for _, step := range []string{store.StepDone, "", "SOMETHING_ELSE"} {
		if _, _, _, ok := Advance(step); ok {
			t.Errorf("Advance(%q) should not be ok", step)
		}
	}
}

func TestActive(t *testing.T) {
	active := []string{store.StepAskBody, store.StepAskHeight, store.StepAskSkin}
	for _, step := range active {
		if !Active(step) {
			t.Errorf("Active(%q) = false, want true", step)
		}
	}
	if Active(store.StepDone) {
		t.Error("Active(DONE) = true, want false")
	}
	if Active("") {
		t.Error(`Active("") = true, want false`)
	}
}
