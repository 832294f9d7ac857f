package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"trendfeed/internal/model"
)

// Summarizer writes a short prose summary of a subject's ranked posts.
type Summarizer interface {
	SummarizeFeed(ctx context.Context, subjectName string, posts []model.Post, language string) (string, error)
}

// maxPrompted caps how many posts go into a prompt.
const maxPrompted = 10

// OpenAIClient implements Summarizer using the Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for compatible gateways
}

func NewOpenAI(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("openai: model must be specified")
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cc), model: cfg.Model}, nil
}

func (o *OpenAIClient) SummarizeFeed(ctx context.Context, subjectName string, posts []model.Post, language string) (string, error) {
	if len(posts) == 0 {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	b := &strings.Builder{}
	for i, p := range posts {
		if i >= maxPrompted {
			break
		}
		fmt.Fprintf(b, "- %s (%d likes, %d comments)\n", oneLine(p.Content), p.LikeCount, p.CommentCount)
	}
	sys := fmt.Sprintf(`
		You summarize community discussion for a trends digest. Write in %s.
		Return 2 to 4 sentences (60-180 words) of plain text, no links, no lists.
		Name the themes people engage with most; do not invent facts.
		`, langOrDefault(language))
	user := fmt.Sprintf("Subject: %s\nTop posts by engagement:\n%s\nTask: Summarize what the community is talking about right now.", subjectName, b.String())

	out, err := o.create(ctx, sys, user)
	if err != nil {
		slog.Error("openai: summarize feed error", "subject", subjectName, "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
