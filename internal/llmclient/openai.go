/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package llmclient

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Silverdust-ZH/LectorGPT/internal/result"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// OpenAIClient is the subset of the OpenAI SDK client consumed by the
// provider, split out so tests can substitute it.
type OpenAIClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
	CreateChatCompletion(ctx context.Context,
		request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openAIProvider struct {
	client OpenAIClient
}

// NewOpenAIProvider wraps an OpenAI client as a ModelProvider.
func NewOpenAIProvider(client OpenAIClient) ModelProvider {
	return &openAIProvider{client: client}
}

func (p *openAIProvider) ListModels(ctx context.Context) result.Result[[]string] {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return result.Failure[[]string](
			"Failed to fetch a list of supported OpenAI models", err)
	}

	keys := make([]string, 0, len(list.Models))
	for _, model := range list.Models {
		keys = append(keys, string(vendors.VendorOpenAI)+":"+model.ID)
	}

	return result.Success(keys)
}

func (p *openAIProvider) RefineText(ctx context.Context,
	request RefineRequest) result.Result[string] {

	response, err := p.client.CreateChatCompletion(ctx,
		openai.ChatCompletionRequest{
			Model: request.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: request.SystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: request.UserPrompt,
				},
			},
		})
	if err != nil {
		return result.Failure[string](refineFailureContext, err)
	}
	if len(response.Choices) == 0 {
		return result.Failure[string](refineFailureContext,
			errors.New("response contained no choices"))
	}

	return result.Success(strings.TrimSpace(response.Choices[0].Message.Content))
}
