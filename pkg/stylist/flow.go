// Package stylist holds the conversational core of the fashion assistant:
// the guided onboarding flow and the prompt assembly for the generator.
package stylist

import "ai-stylist-be/pkg/store"

const (
	GreetingMessage    = "Hi! Let's complete your style profile for better suggestions 😊"
	QuestionBodyShape  = "First, what's your body shape? (e.g., slim, athletic, round, etc.)"
	QuestionHeight     = "Great! Now, what's your height? (e.g., 5'8\" or 172cm)"
	QuestionSkinTone   = "Thanks! Finally, what's your skin tone? (fair, medium, dark)"
	CompletionMessage  = "Awesome! You're all set. Ask me anything about outfits now 👗👕"
	UnavailableMessage = "Sorry, I couldn't put an outfit together just now."
)

// QuickSuggestions are the canned openers shown before the first message.
var QuickSuggestions = []string{
	"Outfit for a Date",
	"Summer Styles",
	"Tropical Travel",
	"Try this shirt",
}

// Advance consumes the user's answer to the current guided question.
// It returns the profile column the answer must be written to, the bot
// reply, and the next step. ok is false when step is not an active
// guided step (the flow is done or never started).
func Advance(step string) (field, reply, next string, ok bool) {
	switch step {
	case store.StepAskBody:
		return "body_shape", QuestionHeight, store.StepAskHeight, true
	case store.StepAskHeight:
		return "height", QuestionSkinTone, store.StepAskSkin, true
	case store.StepAskSkin:
		return "skin_tone", CompletionMessage, store.StepDone, true
	}
	return "", "", step, false
}

// Active reports whether the guided flow still owns incoming messages.
func Active(step string) bool {
	switch step {
	case store.StepAskBody, store.StepAskHeight, store.StepAskSkin:
		return true
	}
	return false
}
