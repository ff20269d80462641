package domain

// DefaultModel は nano banana として公開されている Gemini の画像生成モデルです。
const DefaultModel = "gemini-2.5-flash-image-preview"

// ErrorKind は失敗レスポンスの分類です。
type ErrorKind string

const (
	ErrorKindNone          ErrorKind = ""
	ErrorKindConfiguration ErrorKind = "configuration"
	ErrorKindValidation    ErrorKind = "validation"
	ErrorKindTransport     ErrorKind = "transport"
	ErrorKindDecode        ErrorKind = "decode"
)

// GenerationRequest は単一の画像生成要求です。
// InputImage を指定する場合は InputImageMIMEType も必須です。
type GenerationRequest struct {
	Prompt             string
	InputImage         []byte
	InputImageMIMEType string
}

// HasInputImage は入力画像が指定されているかを返します。
func (r GenerationRequest) HasInputImage() bool {
	return len(r.InputImage) > 0
}

// GenerationResponse は生成結果です。
// Image と ErrorMessage はどちらか一方だけが設定されます。
// 直接組み立てずに NewSuccessResponse / NewFailureResponse を使ってください。
type GenerationResponse struct {
	Success      bool
	Image        []byte
	MIMEType     string
	SizeBytes    int
	ModelUsed    string
	ErrorMessage string
	ErrorKind    ErrorKind
}

// NewSuccessResponse は生成に成功したレスポンスを作成します。
func NewSuccessResponse(model string, data []byte, mimeType string) GenerationResponse {
	return GenerationResponse{
		Success:   true,
		Image:     data,
		MIMEType:  mimeType,
		SizeBytes: len(data),
		ModelUsed: model,
	}
}

// NewFailureResponse は失敗レスポンスを作成します。
// message が空の場合でも ErrorMessage が空にならないよう kind から補完します。
func NewFailureResponse(model string, kind ErrorKind, message string) GenerationResponse {
	if message == "" {
		message = "image generation failed"
		if kind != ErrorKindNone {
			message = string(kind) + " error"
		}
	}
	return GenerationResponse{
		Success:      false,
		ModelUsed:    model,
		ErrorMessage: message,
		ErrorKind:    kind,
	}
}
