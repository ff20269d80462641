package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "nano-banana-mcp"
	ServerVersion = "0.1.0"

	TransportStdio = "stdio"
	TransportHTTP  = "http"

	shutdownTimeout = 10 * time.Second
)

// Server は nano banana ツールを公開する MCP サーバーです。
type Server struct {
	mcp       *server.MCPServer
	generator Generator
}

// NewServer はツールを登録した MCP サーバーを作成します。
func NewServer(gen Generator) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		generator: gen,
	}
	s.mcp.AddTool(NewGenerateImageTool(), s.handleGenerateImage)
	return s, nil
}

// MCPServer は内部の MCPServer を返します。
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve は指定されたトランスポートで ctx がキャンセルされるまで待ち受けます。
func (s *Server) Serve(ctx context.Context, transport, addr string) error {
	switch transport {
	case "", TransportStdio:
		return s.ServeStdio(ctx)
	case TransportHTTP:
		return s.ServeHTTP(ctx, addr)
	default:
		return fmt.Errorf("unknown transport: %q", transport)
	}
}

// ServeStdio は標準入出力で待ち受けます。stdout はプロトコル専用のため、ログは slog に流します。
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	slog.InfoContext(ctx, "MCP サーバーを起動しました", "transport", TransportStdio)
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server stopped: %w", err)
	}
	return nil
}

// ServeHTTP は Streamable HTTP で待ち受け、ctx がキャンセルされたらシャットダウンします。
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "MCP サーバーを起動しました", "transport", TransportHTTP, "addr", addr)
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	slog.Info("MCP サーバーを停止しました")
	return nil
}
