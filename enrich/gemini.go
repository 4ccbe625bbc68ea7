// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package enrich

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Prompts match the deployed classifier: one-sentence Korean summary, and a
// 진보/중도/보수 classification with a one-sentence reason. The classifier's
// answer is free text; normalization happens downstream.
const (
	summarizePrompt = "다음 뉴스 기사를 한 문장으로 요약해줘.\n\n%s"
	classifyPrompt  = "다음 뉴스 기사의 정치적 성향을 '진보', '중도', '보수' 중 하나로 분류하고, 그 이유를 한 문장으로 설명해줘.\n\n%s"
)

// Gemini enriches articles through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini enricher. The API key must be pre-validated by
// configuration loading; this package never reads environment state.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, fmt.Sprintf(summarizePrompt, text))
}

func (g *Gemini) ClassifyLeaning(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, fmt.Sprintf(classifyPrompt, text))
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
