package domain

import "time"

// Role identifies the author of a thread message.
type Role string

const (
	// RoleUser is a question or prompt from the signed-in admin.
	RoleUser Role = "user"
	// RoleAssistant is a reply from the commentary backend.
	RoleAssistant Role = "assistant"
)

// SourceRef is a citation attached to an assistant reply.
type SourceRef struct {
	Title    string `json:"title"`
	Citation string `json:"citation"`
	LinkURL  string `json:"link_url,omitempty"`
}

// AssistantMessage is one message in a commentary thread.
type AssistantMessage struct {
	ID              string      `json:"id"`
	ThreadID        string      `json:"thread_id"`
	Role            Role        `json:"role"`
	ContentMarkdown string      `json:"content_markdown"`
	Sources         []SourceRef `json:"sources,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`

	// IsTyping and IsTemporary are client-session flags. A temporary
	// message is replaced once the canonical message is reloaded from the
	// backend; neither flag is persisted.
	IsTyping    bool `json:"-"`
	IsTemporary bool `json:"-"`
}

// Thread is a commentary conversation, cached locally so past
// conversations can be reopened offline.
type Thread struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Messages  []AssistantMessage `json:"messages,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
