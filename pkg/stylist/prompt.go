package stylist

import (
	"fmt"
	"strings"

	"ai-stylist-be/internal/entity"
)

// ProfilePromptBuilder assembles the prompt sent after a profile save.
type ProfilePromptBuilder struct {
	profile *entity.Profile
}

func NewProfilePromptBuilder(profile *entity.Profile) *ProfilePromptBuilder {
	return &ProfilePromptBuilder{profile: profile}
}

// Build produces a deterministic prompt embedding the profile fields.
func (b *ProfilePromptBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are a fashion stylist AI assistant.\n\n")
	prompt.WriteString("The user profile is:\n")
	fmt.Fprintf(&prompt, "- Gender: %s\n", b.profile.Gender)
	fmt.Fprintf(&prompt, "- Skin Tone: %s\n", b.profile.SkinTone)
	fmt.Fprintf(&prompt, "- Top Size: %s\n", b.profile.TopSize)
	fmt.Fprintf(&prompt, "- Bottom Size: %s\n", b.profile.BottomSize)
	fmt.Fprintf(&prompt, "- Style: %s\n", b.profile.Style)
	if b.profile.Bio != "" {
		fmt.Fprintf(&prompt, "- Bio: %s\n", b.profile.Bio)
	}

	prompt.WriteString("\nSuggest 1-2 outfit styles ideal for this profile. Recommend:\n")
	prompt.WriteString("1. Outfit ideas (top, bottom, layer, shoes)\n")
	prompt.WriteString("2. Ideal color palette based on skin tone\n")
	prompt.WriteString("3. Fit advice for body proportions\n\n")
	prompt.WriteString("Keep it short, friendly, and practical for everyday or travel.\n")

	return prompt.String()
}

// ChatPromptBuilder assembles the prompt for a free-form chat turn.
type ChatPromptBuilder struct {
	profile   *entity.Profile
	utterance string
}

func NewChatPromptBuilder(profile *entity.Profile, utterance string) *ChatPromptBuilder {
	return &ChatPromptBuilder{
		profile:   profile,
		utterance: utterance,
	}
}

func (b *ChatPromptBuilder) Build() string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "The user's style is %s, sizes are %s (top) and %s (bottom).\n",
		b.profile.Style, b.profile.TopSize, b.profile.BottomSize)
	fmt.Fprintf(&prompt, "Gender: %s, Skin tone: %s. Bio: %s\n",
		b.profile.Gender, b.profile.SkinTone, b.profile.Bio)
	fmt.Fprintf(&prompt, "User said: %q. Suggest a short outfit idea.\n", b.utterance)

	return prompt.String()
}

// MissingFieldsMessage lists the blocking profile fields back to the user
// verbatim, in the order MissingChatFields reports them.
func MissingFieldsMessage(missing []string) string {
	return fmt.Sprintf("Please complete your profile first. Missing: %s.", strings.Join(missing, ", "))
}
