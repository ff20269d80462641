package generator

import (
	"context"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/nano-banana-mcp/pkg/domain"
	"google.golang.org/genai"
)

// ContentGenerator は Gemini への通信を抽象化するインターフェースです。
// gemini.GenerativeModel のうち、画像生成に必要なメソッドだけを切り出しています。
type ContentGenerator interface {
	GenerateWithParts(ctx context.Context, modelName string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

// ImageGenerator は MCP ツールなどの呼び出し側が利用する窓口です。
type ImageGenerator interface {
	// Generate は生成要求を検証して 1 回だけモデルを呼び出し、結果を正規化して返します。
	Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResponse
	// GenerateFromEncoded は base64 の入出力を扱うツール向けの入口です。
	GenerateFromEncoded(ctx context.Context, prompt, inputImageB64, inputImageMIMEType string) ToolResult
}
