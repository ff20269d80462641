package inject

import (
	"context"
	"testing"
	"time"

	"github.com/samber/do"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/nano-banana-mcp/internal/config"
	"github.com/shouni/nano-banana-mcp/pkg/generator"
	"github.com/shouni/nano-banana-mcp/pkg/mcpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubClient struct{}

func (stubClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	return nil, nil
}

func TestSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("クライアントを差し替えるとサーバーまで解決できるのだ", func(t *testing.T) {
		cfg := &config.Config{APIKey: "key", Model: "test-model", Timeout: time.Second}
		injector := Setup(ctx, cfg)
		do.Override[generator.ContentGenerator](injector, func(i *do.Injector) (generator.ContentGenerator, error) {
			return stubClient{}, nil
		})

		srv, err := do.Invoke[*mcpserver.Server](injector)
		require.NoError(t, err)
		assert.NotNil(t, srv)

		gen := do.MustInvoke[*generator.NanoBananaGenerator](injector)
		assert.Equal(t, "test-model", gen.Model())
		assert.NoError(t, injector.Shutdown())
	})

	t.Run("APIキーが無い場合はクライアントの解決に失敗するのだ", func(t *testing.T) {
		injector := Setup(ctx, &config.Config{})

		_, err := do.Invoke[generator.ContentGenerator](injector)
		assert.ErrorContains(t, err, "API key is required")
	})
}
