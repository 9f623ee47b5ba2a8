package ai

import (
	"fmt"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/pfhealth/vitality-engine/internal/model/chat"
)

func TestBuildHistoryMessagesMapsRoles(t *testing.T) {
	history := []chat.Message{
		{Sender: "alice", Content: "my knee aches today"},
		{Sender: CoachSender, Content: "try the gentle stretch routine"},
		{Sender: "alice", Content: "done, feels better"},
	}

	messages := buildHistoryMessages(history)
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Role != schema.User {
		t.Fatalf("expected user role, got %s", messages[0].Role)
	}
	if messages[1].Role != schema.Assistant {
		t.Fatalf("expected assistant role, got %s", messages[1].Role)
	}
	if messages[2].Content != "done, feels better" {
		t.Fatalf("unexpected content: %s", messages[2].Content)
	}
}

func TestBuildHistoryMessagesWindowsTail(t *testing.T) {
	history := make([]chat.Message, 0, 25)
	for i := 0; i < 25; i++ {
		history = append(history, chat.Message{
			Sender:  "alice",
			Content: fmt.Sprintf("update %d", i),
		})
	}

	messages := buildHistoryMessages(history)
	if len(messages) != historyLimit {
		t.Fatalf("expected %d messages, got %d", historyLimit, len(messages))
	}
	if messages[0].Content != "update 15" {
		t.Fatalf("window must keep the tail, got %s", messages[0].Content)
	}
}

func TestBuildHistoryMessagesEmpty(t *testing.T) {
	if got := buildHistoryMessages(nil); got != nil {
		t.Fatalf("expected nil for empty history, got %v", got)
	}
}
