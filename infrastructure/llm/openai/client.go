// ABOUTME: OpenAI-compatible summarizer implementation using chat completions
// ABOUTME: Works against any endpoint speaking the OpenAI API via a base URL override

package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	coreerrors "summaries-app-api/core/errors"
	"summaries-app-api/pkg/config"
)

const systemPrompt = "You are an expert researcher and technical writer."

// Client implements the Summarizer interface using an OpenAI-compatible API
type Client struct {
	inner *openai.Client
	model string
}

// NewClient creates a summarizer client from LLM configuration
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM API key cannot be empty")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		inner: openai.NewClientWithConfig(clientConfig),
		model: cfg.Model,
	}, nil
}

// Summarize produces a single-page summary document about the topic from
// the combined source content. Errors surface to the caller, which falls
// back to the deterministic composer.
func (c *Client) Summarize(ctx context.Context, topic, content string) (string, error) {
	resp, err := c.inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildUserMessage(topic, content),
			},
		},
	})
	if err != nil {
		return "", &coreerrors.ExternalAPIError{
			API:     "llm",
			Message: err.Error(),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &coreerrors.ExternalAPIError{
			API:     "llm",
			Message: "no completion choices returned",
		}
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", &coreerrors.ExternalAPIError{
			API:     "llm",
			Message: "empty completion",
		}
	}

	return summary, nil
}

// buildUserMessage renders the summarization instructions with the topic
// and combined source content inlined.
func buildUserMessage(topic, content string) string {
	return fmt.Sprintf(`Based on the following content from multiple sources about %q, create a comprehensive, well-organized single-page summary document that:

1. Starts with an executive summary/introduction (2-3 sentences)
2. Organizes information into clear sections with headings
3. Extracts and presents the most important facts, insights, and key points
4. Combines information from different sources into a coherent narrative
5. Highlights statistics, quotes, and notable findings
6. Maintains accuracy and cites key information
7. Is comprehensive yet concise (1500-3000 words total)
8. Ends with a conclusion that synthesizes the main takeaways

Structure the summary as a professional document that could stand alone. Use clear headings and subheadings. Make it informative and easy to read.

Content from sources:
%s

Create a comprehensive, single-page summary document about %q:`, topic, content, topic)
}
