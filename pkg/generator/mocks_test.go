package generator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/stretchr/testify/mock"
	"google.golang.org/genai"
)

// --- Mocks ---

// stubAIClient は ContentGenerator の関数差し替え型モックなのだ。
type stubAIClient struct {
	calls        atomic.Int32
	generateFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

func (m *stubAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls.Add(1)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts, opts)
	}
	return nil, nil
}

// mockAIClient は呼び出し有無の検証に使う testify のモックなのだ。
type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	args := m.Called(ctx, model, parts, opts)
	resp, _ := args.Get(0).(*gemini.Response)
	return resp, args.Error(1)
}

// --- Helpers ---

// imageResponse は画像パーツを 1 つ含むレスポンスを作るのだ。
func imageResponse(data []byte, mimeType string) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "here is your image"},
						{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
					},
				},
				FinishReason: genai.FinishReasonStop,
			}},
		},
	}
}

// textOnlyResponse は画像を含まないレスポンスを作るのだ。
func textOnlyResponse(text string) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
			}},
		},
	}
}

// pngBytes は 4x4 の PNG 画像を作るのだ。
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{uint8(x * 60), uint8(y * 60), 128, 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}
