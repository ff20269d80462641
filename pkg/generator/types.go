package generator

import (
	"time"

	"github.com/shouni/nano-banana-mcp/pkg/domain"
	"github.com/shouni/nano-banana-mcp/pkg/imgutil"
)

const (
	// DefaultTimeout はモデル呼び出し 1 回あたりの既定のタイムアウトです。
	DefaultTimeout = 60 * time.Second
	// maxPromptLogLength はログに出力するプロンプトの最大文字数です。
	maxPromptLogLength = 100
	// maxTextLogLength はエラーに含めるモデルのテキスト応答の最大文字数です。
	maxTextLogLength = 200
)

// Options は NanoBananaGenerator の生成パラメータです。
type Options struct {
	Model              string
	Timeout            time.Duration
	AspectRatio        string
	SystemPrompt       string
	CompressInput      bool
	CompressionQuality int
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = domain.DefaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.CompressionQuality <= 0 {
		o.CompressionQuality = imgutil.DefaultCompressionQuality
	}
	return o
}

// ImageOutput はレスポンス解析の内部結果です。
type ImageOutput struct {
	Data     []byte
	MimeType string
}

// ToolResult は MCP ツールの応答エンベロープです。
type ToolResult struct {
	Success                bool   `json:"success"`
	GeneratedImageB64      string `json:"generated_image_b64,omitempty"`
	GeneratedImageSize     int    `json:"generated_image_size,omitempty"`
	GeneratedImageMIMEType string `json:"generated_image_mime_type,omitempty"`
	ModelUsed              string `json:"model_used"`
	Error                  string `json:"error,omitempty"`
}

// NewToolResult はドメインのレスポンスを base64 のエンベロープに変換します。
func NewToolResult(resp domain.GenerationResponse) ToolResult {
	if !resp.Success {
		return ToolResult{
			Success:   false,
			ModelUsed: resp.ModelUsed,
			Error:     resp.ErrorMessage,
		}
	}
	return ToolResult{
		Success:                true,
		GeneratedImageB64:      imgutil.EncodeBase64(resp.Image),
		GeneratedImageSize:     resp.SizeBytes,
		GeneratedImageMIMEType: resp.MIMEType,
		ModelUsed:              resp.ModelUsed,
	}
}
