/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package llmclient

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/Silverdust-ZH/LectorGPT/internal/result"
	"github.com/Silverdust-ZH/LectorGPT/internal/vendors"
)

// GoogleClient is the subset of the Gemini SDK consumed by the provider,
// split out so tests can substitute it.
type GoogleClient interface {
	ListModelNames(ctx context.Context) ([]string, error)
	GenerateText(ctx context.Context, model, systemPrompt,
		userPrompt string) (string, error)
}

// genaiClient adapts *genai.Client to the GoogleClient interface.
type genaiClient struct {
	client *genai.Client
}

// NewGoogleClient constructs the Gemini API client for apiKey.
func NewGoogleClient(ctx context.Context, apiKey string) (GoogleClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &genaiClient{client: client}, nil
}

func (g *genaiClient) ListModelNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	for model, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		// The API reports fully qualified names such as
		// "models/gemini-2.5-flash".
		names = append(names, strings.TrimPrefix(model.Name, "models/"))
	}

	return names, nil
}

func (g *genaiClient) GenerateText(ctx context.Context, model, systemPrompt,
	userPrompt string) (string, error) {

	response, err := g.client.Models.GenerateContent(ctx, model,
		genai.Text(userPrompt), &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt,
				genai.RoleUser),
		})
	if err != nil {
		return "", err
	}

	return response.Text(), nil
}

type googleProvider struct {
	client GoogleClient
}

// NewGoogleProvider wraps a Google client as a ModelProvider.
func NewGoogleProvider(client GoogleClient) ModelProvider {
	return &googleProvider{client: client}
}

func (p *googleProvider) ListModels(ctx context.Context) result.Result[[]string] {
	names, err := p.client.ListModelNames(ctx)
	if err != nil {
		return result.Failure[[]string](
			"Failed to fetch a list of supported Google models", err)
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, string(vendors.VendorGoogle)+":"+name)
	}

	return result.Success(keys)
}

func (p *googleProvider) RefineText(ctx context.Context,
	request RefineRequest) result.Result[string] {

	text, err := p.client.GenerateText(ctx, request.Model,
		request.SystemPrompt, request.UserPrompt)
	if err != nil {
		return result.Failure[string](refineFailureContext, err)
	}

	return result.Success(strings.TrimSpace(text))
}
