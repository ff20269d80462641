package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/nano-banana-mcp/pkg/domain"
	"github.com/shouni/nano-banana-mcp/pkg/imgutil"
)

// NanoBananaGenerator は nano banana (Gemini 画像生成モデル) を呼び出すアダプターです。
// 状態を持たないため、複数のゴルーチンから同時に利用できます。
type NanoBananaGenerator struct {
	client ContentGenerator
	opts   Options
}

var _ ImageGenerator = (*NanoBananaGenerator)(nil)

// NewNanoBananaGenerator は通信クライアントを注入して NanoBananaGenerator を初期化します。
func NewNanoBananaGenerator(client ContentGenerator, opts Options) (*NanoBananaGenerator, error) {
	if client == nil {
		return nil, newError(domain.ErrorKindConfiguration, ErrMissingClient)
	}
	return &NanoBananaGenerator{
		client: client,
		opts:   opts.withDefaults(),
	}, nil
}

// Model は使用するモデル名を返します。
func (g *NanoBananaGenerator) Model() string {
	return g.opts.Model
}

// Generate は生成要求を検証し、モデルを 1 回だけ呼び出して結果を返します。
// 失敗はすべて Success=false のレスポンスに正規化され、エラーとしては返りません。
func (g *NanoBananaGenerator) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResponse {
	out, err := g.generate(ctx, req)
	if err != nil {
		return g.failure(ctx, err)
	}
	return domain.NewSuccessResponse(g.opts.Model, out.Data, out.MimeType)
}

// GenerateFromEncoded は base64 の入力画像をデコードして Generate に委譲し、
// 生成画像を base64 にエンコードしたエンベロープを返します。
func (g *NanoBananaGenerator) GenerateFromEncoded(ctx context.Context, prompt, inputImageB64, inputImageMIMEType string) ToolResult {
	var image []byte
	if strings.TrimSpace(inputImageB64) != "" {
		decoded, err := imgutil.DecodeBase64(inputImageB64)
		if err != nil {
			return NewToolResult(g.failure(ctx, newError(domain.ErrorKindDecode, fmt.Errorf("%w: %w", ErrInvalidBase64, err))))
		}
		image = decoded
	}

	resp := g.Generate(ctx, domain.GenerationRequest{
		Prompt:             prompt,
		InputImage:         image,
		InputImageMIMEType: inputImageMIMEType,
	})
	return NewToolResult(resp)
}

func (g *NanoBananaGenerator) generate(ctx context.Context, req domain.GenerationRequest) (*ImageOutput, error) {
	mimeType, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "nano banana で画像を生成します",
		"model", g.opts.Model,
		"prompt", truncate(req.Prompt, maxPromptLogLength),
		"input_image_bytes", len(req.InputImage))

	parts := g.buildParts(ctx, req.Prompt, req.InputImage, mimeType)
	opts := gemini.GenerateOptions{
		AspectRatio:  g.opts.AspectRatio,
		SystemPrompt: g.opts.SystemPrompt,
	}

	callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	resp, err := g.client.GenerateWithParts(callCtx, g.opts.Model, parts, opts)
	if err != nil {
		return nil, classifyError(err, callCtx.Err(), g.opts.Timeout)
	}

	out, err := parseToResponse(resp)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "生成画像を抽出しました", "bytes", len(out.Data), "mime_type", out.MimeType)
	return out, nil
}

// failure はエラーを分類付きの失敗レスポンスに変換します。
func (g *NanoBananaGenerator) failure(ctx context.Context, err error) domain.GenerationResponse {
	kind := KindOf(err)

	var message string
	switch kind {
	case domain.ErrorKindValidation:
		message = "invalid request: " + err.Error()
	case domain.ErrorKindDecode:
		message = err.Error()
		if !errors.Is(err, ErrInvalidBase64) {
			message = "image generation failed: " + message
		}
	default:
		message = "image generation failed: " + err.Error()
	}

	slog.WarnContext(ctx, "画像生成に失敗しました", "kind", kind, "error", err)
	return domain.NewFailureResponse(g.opts.Model, kind, message)
}
