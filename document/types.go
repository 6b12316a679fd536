package document

// Message is a single chat message. Only Content is read during evaluation.
type Message struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

// Conversation is the chat record being evaluated.
type Conversation struct {
	Messages          []Message `json:"messages"`
	AssistantResponse string    `json:"assistant_response"`
}

// LastMessage returns the content of the final message.
func (c *Conversation) LastMessage() (string, error) {
	if len(c.Messages) == 0 {
		return "", &MissingFieldError{Field: "messages"}
	}
	return c.Messages[len(c.Messages)-1].Content, nil
}

// ContextDocument holds the reference snippets a response is checked against.
type ContextDocument struct {
	Vectors []string `json:"vectors"`
}
