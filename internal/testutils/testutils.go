package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// ChatFixture is the on-disk shape of a conversation document
type ChatFixture struct {
	Messages          []MessageFixture `json:"messages"`
	AssistantResponse string           `json:"assistant_response"`
}

// MessageFixture is a single chat message in a ChatFixture
type MessageFixture struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

// ContextFixture is the on-disk shape of a context document
type ContextFixture struct {
	Vectors []string `json:"vectors"`
}

// NewChat returns a two message conversation ending with userMessage
func NewChat(userMessage, response string) ChatFixture {
	return ChatFixture{
		Messages: []MessageFixture{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: userMessage},
		},
		AssistantResponse: response,
	}
}

// WriteJSON encodes v into dir/name and returns the full path
func WriteJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	return WriteRaw(t, dir, name, string(data))
}

// WriteRaw writes content verbatim into dir/name and returns the full path
func WriteRaw(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
