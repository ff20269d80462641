package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do"
	"github.com/shouni/nano-banana-mcp/internal/config"
	"github.com/shouni/nano-banana-mcp/internal/inject"
	"github.com/shouni/nano-banana-mcp/internal/logging"
	"github.com/shouni/nano-banana-mcp/pkg/generator"
	"github.com/shouni/nano-banana-mcp/pkg/mcpserver"
)

func main() {
	if err := run(); err != nil {
		slog.Error("nano banana MCP サーバーが異常終了しました", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogTimestamps))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := inject.Setup(ctx, cfg)
	defer func() {
		if err := injector.Shutdown(); err != nil {
			slog.Warn("依存関係の停止に失敗しました", "error", err)
		}
	}()

	srv, err := do.Invoke[*mcpserver.Server](injector)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "nano banana MCP サーバーを開始します",
		"model", do.MustInvoke[*generator.NanoBananaGenerator](injector).Model(),
		"transport", cfg.Transport,
		"timeout", cfg.Timeout.String())
	return srv.Serve(ctx, cfg.Transport, cfg.HTTPAddr)
}
