package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/pfhealth/vitality-engine/internal/config"
	"github.com/pfhealth/vitality-engine/internal/model/chat"
)

// CoachSender marks messages the coach appended to the chat store.
const CoachSender = "coach"

const systemPrompt = "You are Vita, a supportive recovery coach inside a " +
	"physiotherapy tracking app. Encourage the patient, keep answers short " +
	"and practical, and never give a medical diagnosis; suggest contacting " +
	"the care team for anything clinical."

// Keep the prompt bounded no matter how long the session runs.
const historyLimit = 10

// Service generates coach replies from the chat history via an Ark model.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the reply chain against the configured model.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile coach chain: %w", err)
	}

	return &Service{chatModel: chatModel, cfg: cfg, chain: runnable}, nil
}

// StreamingEnabled reports whether replies should stream over SSE.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateReply produces a complete coach reply for the given history
// and user message.
func (s *Service) GenerateReply(ctx context.Context, history []chat.Message, userMessage string) (*schema.Message, error) {
	response, err := s.chain.Invoke(ctx, buildChainInput(history, userMessage))
	if err != nil {
		return nil, fmt.Errorf("failed to run coach chain: %w", err)
	}
	return response, nil
}

// StreamReply streams coach reply chunks via the compiled chain.
func (s *Service) StreamReply(ctx context.Context, history []chat.Message, userMessage string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	stream, err := s.chain.Stream(ctx, buildChainInput(history, userMessage))
	if err != nil {
		return nil, fmt.Errorf("failed to stream coach chain output: %w", err)
	}
	return stream, nil
}

func buildChainInput(history []chat.Message, userMessage string) map[string]any {
	return map[string]any{
		"system":  systemPrompt,
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}
}

// buildHistoryMessages maps the recent store tail onto model roles:
// coach turns become assistant messages, everything else is the user.
func buildHistoryMessages(history []chat.Message) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	startIdx := 0
	if len(history) > historyLimit {
		startIdx = len(history) - historyLimit
	}

	messages := make([]*schema.Message, 0, len(history)-startIdx)
	for _, msg := range history[startIdx:] {
		if msg.Sender == CoachSender {
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
			continue
		}
		messages = append(messages, schema.UserMessage(msg.Content))
	}
	return messages
}
