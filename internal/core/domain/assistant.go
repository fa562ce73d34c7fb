package domain

// AssistantResponseType classifies the assistant's answer so the frontend can
// render it appropriately.
type AssistantResponseType string

const (
	AssistantText       AssistantResponseType = "text"
	AssistantSuggestion AssistantResponseType = "suggestion"
	AssistantInsight    AssistantResponseType = "insight"
)

// ChatTurn is one prior exchange in an assistant conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AssistantReply is the relayed gateway answer plus its classification.
type AssistantReply struct {
	Response string                `json:"response"`
	Type     AssistantResponseType `json:"type"`
}
