package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/nano-banana-mcp/pkg/domain"
	"google.golang.org/genai"
)

// responseModalities は画像生成モデルに要求する応答の種類です。
var responseModalities = []string{"TEXT", "IMAGE"}

// GenAIClient は google.golang.org/genai を使って ContentGenerator を実装します。
type GenAIClient struct {
	client *genai.Client
}

// NewGenAIClient は API キーから Gemini API (AI Studio) 用のクライアントを初期化します。
// API キーが空の場合は通信を行う前に configuration エラーを返します。
func NewGenAIClient(ctx context.Context, apiKey string) (*GenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, newError(domain.ErrorKindConfiguration, ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, newError(domain.ErrorKindConfiguration, fmt.Errorf("failed to create GenAI client: %w", err))
	}

	return &GenAIClient{client: client}, nil
}

// GenerateWithParts はパーツ群を 1 つのユーザーコンテンツとして送信します。
func (c *GenAIClient) GenerateWithParts(ctx context.Context, modelName string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, modelName, contents, buildGenerateConfig(opts))
	if err != nil {
		return nil, err
	}

	return &gemini.Response{RawResponse: resp}, nil
}

// buildGenerateConfig は GenerateOptions を SDK の設定に変換します。
// gemini-2.5-flash-image-preview は候補数や MediaResolution の指定を受け付けないため設定しません。
func buildGenerateConfig(opts gemini.GenerateOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: responseModalities,
	}
	if opts.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}
	if opts.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: opts.AspectRatio}
	}
	return cfg
}
