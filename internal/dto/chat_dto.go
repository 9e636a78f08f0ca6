package dto

type SendChatRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type ChatMessageDTO struct {
	Id     int64  `json:"id"`
	Text   string `json:"text"`
	IsUser bool   `json:"is_user"`
}

type SendChatResponse struct {
	Sent  *ChatMessageDTO `json:"sent"`
	Reply *ChatMessageDTO `json:"reply"`
	// Mode reports how the turn was handled: "guided", "gated" or "stylist".
	Mode string `json:"mode"`
}

type ChatHistoryResponse struct {
	Messages    []ChatMessageDTO `json:"messages"`
	Suggestions []string         `json:"suggestions"`
}
