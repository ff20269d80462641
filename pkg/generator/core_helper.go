package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/nano-banana-mcp/pkg/domain"
	"github.com/shouni/nano-banana-mcp/pkg/imgutil"
	"google.golang.org/genai"
)

// validateRequest は生成要求を検証し、正規化した入力画像の MIME タイプを返します。
func validateRequest(req domain.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", newError(domain.ErrorKindValidation, ErrEmptyPrompt)
	}

	hasImage := req.HasInputImage()
	hasMIME := strings.TrimSpace(req.InputImageMIMEType) != ""

	switch {
	case hasImage && !hasMIME:
		return "", newError(domain.ErrorKindValidation, ErrMissingMIMEType)
	case !hasImage && hasMIME:
		return "", newError(domain.ErrorKindValidation, ErrMissingInputImage)
	case !hasImage:
		return "", nil
	}

	mimeType, ok := imgutil.NormalizeMIMEType(req.InputImageMIMEType)
	if !ok {
		return "", newError(domain.ErrorKindValidation,
			fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedMIMEType, req.InputImageMIMEType, strings.Join(imgutil.SupportedMIMETypes, ", ")))
	}
	return mimeType, nil
}

// buildParts はプロンプトと任意の入力画像から送信用のパーツを組み立てます。
func (g *NanoBananaGenerator) buildParts(ctx context.Context, prompt string, image []byte, mimeType string) []*genai.Part {
	parts := []*genai.Part{{Text: prompt}}
	if len(image) == 0 {
		return parts
	}

	if sniffed := imgutil.SniffMIMEType(image); imgutil.IsImageMIMEType(sniffed) && sniffed != mimeType {
		slog.WarnContext(ctx, "入力画像の MIME タイプが内容と一致しません。指定された値で送信します",
			"declared", mimeType, "detected", sniffed)
	}

	data := image
	if g.opts.CompressInput && mimeType != "image/jpeg" {
		if compressed, err := imgutil.CompressToJPEG(image, g.opts.CompressionQuality); err == nil {
			slog.InfoContext(ctx, "入力画像をJPEGに圧縮しました", "before", len(image), "after", len(compressed))
			data, mimeType = compressed, "image/jpeg"
		} else {
			slog.WarnContext(ctx, "入力画像の圧縮に失敗しました。元の画像で続行します", "error", err)
		}
	}

	return append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}})
}

// parseToResponse は Gemini のレスポンスから最初の画像パーツを取り出します。
func parseToResponse(resp *gemini.Response) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil {
		return nil, newError(domain.ErrorKindDecode, ErrEmptyResponse)
	}
	raw := resp.RawResponse

	if len(raw.Candidates) == 0 || raw.Candidates[0] == nil {
		if fb := raw.PromptFeedback; fb != nil && fb.BlockReason != "" {
			return nil, newError(domain.ErrorKindDecode,
				fmt.Errorf("%w: prompt was blocked (%s) %s", ErrNoImageInOutput, fb.BlockReason, fb.BlockReasonMessage))
		}
		return nil, newError(domain.ErrorKindDecode, fmt.Errorf("%w: no candidates returned", ErrNoImageInOutput))
	}

	// 現在の仕様では、最初の候補 (Candidate) のみを利用する。
	candidate := raw.Candidates[0]

	var texts []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = imgutil.SniffMIMEType(part.InlineData.Data)
				}
				if !imgutil.IsImageMIMEType(mimeType) {
					continue
				}
				return &ImageOutput{Data: part.InlineData.Data, MimeType: mimeType}, nil
			}
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	switch candidate.FinishReason {
	case "", genai.FinishReasonUnspecified, genai.FinishReasonStop:
	default:
		return nil, newError(domain.ErrorKindDecode,
			fmt.Errorf("%w (finish reason: %s)", ErrNoImageInOutput, candidate.FinishReason))
	}

	if len(texts) > 0 {
		return nil, newError(domain.ErrorKindDecode,
			fmt.Errorf("%w; model replied with text: %q", ErrNoImageInOutput, truncate(strings.Join(texts, " "), maxTextLogLength)))
	}
	return nil, newError(domain.ErrorKindDecode, ErrNoImageInOutput)
}

// classifyError は通信エラーを分類します。callErr は呼び出しに使ったコンテキストのエラーです。
func classifyError(err, callErr error, timeout time.Duration) *GenerationError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callErr, context.DeadlineExceeded) {
		return newError(domain.ErrorKindTransport, fmt.Errorf("%w after %s", ErrTimeout, timeout))
	}
	if errors.Is(err, context.Canceled) || errors.Is(callErr, context.Canceled) {
		return newError(domain.ErrorKindTransport, ErrCanceled)
	}

	if code, msg, ok := apiErrorStatus(err); ok {
		if code == http.StatusUnauthorized || code == http.StatusForbidden {
			return newError(domain.ErrorKindTransport, fmt.Errorf("%w (status %d): %s", ErrAuthentication, code, msg))
		}
		return newError(domain.ErrorKindTransport, fmt.Errorf("model API error (status %d): %s", code, msg))
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return newError(domain.ErrorKindTransport, fmt.Errorf("network error: %w", err))
	}
	return newError(domain.ErrorKindTransport, err)
}

// apiErrorStatus は genai.APIError からステータスコードとメッセージを取り出します。
func apiErrorStatus(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}
	return 0, "", false
}
