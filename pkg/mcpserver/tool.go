package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shouni/nano-banana-mcp/pkg/generator"
	"github.com/shouni/nano-banana-mcp/pkg/imgutil"
)

const (
	// ToolName は公開するツール名です。
	ToolName = "generate_image_with_nano_banana"

	ArgPrompt             = "prompt"
	ArgInputImageB64      = "input_image_b64"
	ArgInputImageMIMEType = "input_image_mime_type"
)

// Generator はツールハンドラーが利用する画像生成の窓口です。
type Generator interface {
	GenerateFromEncoded(ctx context.Context, prompt, inputImageB64, inputImageMIMEType string) generator.ToolResult
}

// NewGenerateImageTool はツール定義（入力スキーマ）を作成します。
func NewGenerateImageTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Generate an image with Nano Banana (Gemini image generation). "+
			"Optionally pass a base64 encoded input image to create variations or edits."),
		mcp.WithString(ArgPrompt,
			mcp.Required(),
			mcp.Description("Text prompt describing what image to generate"),
		),
		mcp.WithString(ArgInputImageB64,
			mcp.Description("Optional base64 encoded input image for variations"),
		),
		mcp.WithString(ArgInputImageMIMEType,
			mcp.Description(fmt.Sprintf("MIME type of the input image; required with %s (e.g. 'image/png', 'image/jpeg')", ArgInputImageB64)),
		),
	)
}

// handleGenerateImage はツール呼び出しを GenerateFromEncoded に委譲します。
// 生成の失敗はプロトコルエラーではなく、IsError 付きの結果として返します。
func (s *Server) handleGenerateImage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.generator.GenerateFromEncoded(ctx,
		request.GetString(ArgPrompt, ""),
		request.GetString(ArgInputImageB64, ""),
		request.GetString(ArgInputImageMIMEType, ""),
	)
	return toCallToolResult(result)
}

// toCallToolResult はエンベロープを JSON テキストとして格納し、成功時は画像コンテンツも添付します。
func toCallToolResult(result generator.ToolResult) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}

	content := []mcp.Content{mcp.NewTextContent(string(body))}
	if result.Success {
		mimeType := result.GeneratedImageMIMEType
		if !imgutil.IsImageMIMEType(mimeType) {
			mimeType = "image/png"
		}
		content = append(content, mcp.NewImageContent(result.GeneratedImageB64, mimeType))
	}

	return &mcp.CallToolResult{
		Content: content,
		IsError: !result.Success,
	}, nil
}
