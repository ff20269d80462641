// Package inject は samber/do で依存関係グラフを組み立てます。
package inject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do"
	"github.com/shouni/nano-banana-mcp/internal/config"
	"github.com/shouni/nano-banana-mcp/pkg/generator"
	"github.com/shouni/nano-banana-mcp/pkg/mcpserver"
)

// Setup は設定からサーバーまでの依存関係を登録したインジェクターを返します。
func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			slog.DebugContext(ctx, fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[*config.Config](injector, cfg)
	do.Provide[generator.ContentGenerator](injector, func(i *do.Injector) (generator.ContentGenerator, error) {
		return generator.NewGenAIClient(ctx, do.MustInvoke[*config.Config](i).APIKey)
	})
	do.Provide[*generator.NanoBananaGenerator](injector, func(i *do.Injector) (*generator.NanoBananaGenerator, error) {
		return generator.NewNanoBananaGenerator(
			do.MustInvoke[generator.ContentGenerator](i),
			do.MustInvoke[*config.Config](i).GeneratorOptions(),
		)
	})
	do.Provide[*mcpserver.Server](injector, func(i *do.Injector) (*mcpserver.Server, error) {
		return mcpserver.NewServer(do.MustInvoke[*generator.NanoBananaGenerator](i))
	})

	return injector
}
