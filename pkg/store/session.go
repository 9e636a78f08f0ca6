package store

// ChatMessage is an ephemeral chat entry. Messages live only inside the
// in-memory chat session and are lost when it expires.
type ChatMessage struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	IsUser bool   `json:"is_user"`
}

// ChatSession represents the active chat state for a user in memory.
type ChatSession struct {
	UserID string `json:"user_id"`

	// Step is the guided onboarding position: one of the Step* constants.
	Step string `json:"step"`

	Messages []ChatMessage `json:"messages"`

	// Metadata for last interaction
	LastQuery string `json:"last_query"`
}

const (
	StepAskBody   = "ASK_BODY"
	StepAskHeight = "ASK_HEIGHT"
	StepAskSkin   = "ASK_SKIN"
	StepDone      = "DONE"
)

func (s *ChatSession) Append(msg ChatMessage) {
	s.Messages = append(s.Messages, msg)
}
