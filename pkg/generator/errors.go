package generator

import (
	"errors"

	"github.com/shouni/nano-banana-mcp/pkg/domain"
)

var (
	// ErrMissingAPIKey は API キーが設定されていない場合のエラーです。
	ErrMissingAPIKey = errors.New("Google AI Studio API key is required; set GOOGLE_AI_STUDIO_API_KEY")
	// ErrMissingClient は通信クライアントが注入されていない場合のエラーです。
	ErrMissingClient = errors.New("content generator client is required")

	ErrEmptyPrompt         = errors.New("prompt must not be empty")
	ErrMissingMIMEType     = errors.New("input_image_mime_type is required when an input image is provided")
	ErrMissingInputImage   = errors.New("input_image_mime_type was provided without an input image")
	ErrUnsupportedMIMEType = errors.New("unsupported input image MIME type")

	ErrInvalidBase64   = errors.New("failed to decode base64 input image")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrNoImageInOutput = errors.New("no image data found in model response")

	ErrTimeout        = errors.New("request to model timed out")
	ErrCanceled       = errors.New("request to model was canceled")
	ErrAuthentication = errors.New("authentication with the model API failed")
)

// GenerationError はエラーに分類 (Kind) を付与します。
type GenerationError struct {
	Kind domain.ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return string(e.Kind) + " error"
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newError(kind domain.ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

// KindOf はエラーの分類を返します。分類されていないエラーは transport として扱います。
func KindOf(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrorKindNone
	}
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return domain.ErrorKindTransport
}
