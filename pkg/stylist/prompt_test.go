package stylist

import (
	"strings"
	"testing"

	"ai-stylist-be/internal/entity"

	"github.com/google/uuid"
)

func sampleProfile() *entity.Profile {
	return &entity.Profile{
		Id:         uuid.New(),
		Gender:     entity.GenderFemale,
		SkinTone:   "Medium",
		TopSize:    "M",
		BottomSize: "S",
		Style:      "Casual",
		Bio:        "Loves beach trips",
	}
}

func TestProfilePromptDeterministic(t *testing.T) {
	p := sampleProfile()

	a := NewProfilePromptBuilder(p).Build()
	b := NewProfilePromptBuilder(p).Build()
	if a != b {
		t.Fatal("same profile produced different prompts")
	}

	for _, want := range []string{
		"You are a fashion stylist AI assistant.",
		"- Gender: female",
		"- Skin Tone: Medium",
		"- Top Size: M",
		"- Bottom Size: S",
		"- Style: Casual",
		"- Bio: Loves beach trips",
	} {
		if !strings.Contains(a, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestProfilePromptOmitsEmptyBio(t *testing.T) {
	p := sampleProfile()
	p.Bio = ""

	prompt := NewProfilePromptBuilder(p).Build()
	if strings.Contains(prompt, "Bio:") {
		t.Error("prompt should not mention an empty bio")
	}
}

func TestChatPromptEmbedsUtterance(t *testing.T) {
	p := sampleProfile()

	prompt := NewChatPromptBuilder(p, "outfit for a date").Build()

	for _, want := range []string{
		"The user's style is Casual, sizes are M (top) and S (bottom).",
		"Gender: female, Skin tone: Medium.",
		`User said: "outfit for a date".`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q in:\n%s", want, prompt)
		}
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	got := MissingFieldsMessage([]string{"gender"})
	want := "Please complete your profile first. Missing: gender."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = MissingFieldsMessage([]string{"style", "top size"})
	want = "Please complete your profile first. Missing: style, top size."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
