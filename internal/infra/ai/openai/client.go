package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/sitewalk/inspection-api/internal/domain/vision"
	"github.com/sitewalk/inspection-api/internal/i18n"
	"github.com/sitewalk/inspection-api/internal/infra/ai/prompt"
)

const maxTokens = 1024

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) Analyze(ctx context.Context, req vision.Request) (vision.Result, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: prompt.GetUserPrompt(req.Question, req.Language)},
	}
	for _, img := range req.Images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	creq := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	}
	// For reasoning models use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		creq.MaxCompletionTokens = maxTokens
	} else {
		creq.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, creq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return vision.Result{}, vision.ErrQuotaExceeded
		}
		return vision.Result{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return vision.Result{}, fmt.Errorf("empty completion response")
	}

	return ParseResult(resp.Choices[0].Message.Content, req.Language), nil
}

// ParseResult decodes the service's JSON answer. A non-conforming payload
// degrades into a fallback: raw text as the answer, insufficient, localized
// retake-photos suggestion. The caller never sees this as a hard failure.
func ParseResult(raw string, lang i18n.Language) vision.Result {
	var res vision.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil || strings.TrimSpace(res.Answer) == "" {
		return vision.Result{
			Answer:          raw,
			Sufficient:      false,
			SuggestedAction: i18n.T(lang, i18n.KeyRetakePhotos),
		}
	}
	if !res.Sufficient && res.SuggestedAction == "" {
		res.SuggestedAction = i18n.T(lang, i18n.KeyRetakePhotos)
	}
	return res
}
