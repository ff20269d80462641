// Package config は環境変数と .env ファイルからサーバーの設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/shouni/nano-banana-mcp/pkg/generator"
	"github.com/shouni/nano-banana-mcp/pkg/mcpserver"
)

const (
	EnvAPIKey         = "GOOGLE_AI_STUDIO_API_KEY"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvModel          = "NANO_BANANA_MODEL"
	EnvTimeout        = "NANO_BANANA_TIMEOUT"
	EnvAspectRatio    = "NANO_BANANA_ASPECT_RATIO"
	EnvSystemPrompt   = "NANO_BANANA_SYSTEM_PROMPT"
	EnvCompressInput  = "NANO_BANANA_COMPRESS_INPUT"
	EnvTransport      = "NANO_BANANA_TRANSPORT"
	EnvHTTPAddr       = "NANO_BANANA_HTTP_ADDR"
	EnvLogLevel       = "NANO_BANANA_LOG_LEVEL"
	EnvLogTimestamps  = "NANO_BANANA_LOG_TIMESTAMPS"
	defaultHTTPAddr   = ":8080"
	defaultTransport  = mcpserver.TransportStdio
	defaultLogLevel   = slog.LevelInfo
	defaultTimestamps = true
)

// Config はサーバー全体の設定です。
type Config struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	AspectRatio   string
	SystemPrompt  string
	CompressInput bool
	Transport     string
	HTTPAddr      string
	LogLevel      slog.Level
	LogTimestamps bool
}

// Load は .env ファイル（存在する場合）を読み込んでから環境変数で Config を作成します。
// .env に書かれた値は既存の環境変数を上書きしません。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv は getenv で取得した値から Config を作成します。
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &Config{
		APIKey:       lo.CoalesceOrEmpty(get(EnvAPIKey), get(EnvGeminiAPIKey)),
		Model:        get(EnvModel),
		AspectRatio:  get(EnvAspectRatio),
		SystemPrompt: get(EnvSystemPrompt),
		Transport:    lo.CoalesceOrEmpty(strings.ToLower(get(EnvTransport)), defaultTransport),
		HTTPAddr:     lo.CoalesceOrEmpty(get(EnvHTTPAddr), defaultHTTPAddr),
		LogLevel:     defaultLogLevel,
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s not set: %w", EnvAPIKey, generator.ErrMissingAPIKey)
	}

	var err error
	if cfg.Timeout, err = parseTimeout(get(EnvTimeout)); err != nil {
		return nil, err
	}
	if cfg.CompressInput, err = parseBool(EnvCompressInput, get(EnvCompressInput), false); err != nil {
		return nil, err
	}
	if cfg.LogTimestamps, err = parseBool(EnvLogTimestamps, get(EnvLogTimestamps), defaultTimestamps); err != nil {
		return nil, err
	}
	if v := get(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, v, err)
		}
	}
	if !lo.Contains([]string{mcpserver.TransportStdio, mcpserver.TransportHTTP}, cfg.Transport) {
		return nil, fmt.Errorf("invalid %s %q: must be %q or %q", EnvTransport, cfg.Transport, mcpserver.TransportStdio, mcpserver.TransportHTTP)
	}

	return cfg, nil
}

// GeneratorOptions は画像生成アダプター用のオプションを返します。
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Model:         c.Model,
		Timeout:       c.Timeout,
		AspectRatio:   c.AspectRatio,
		SystemPrompt:  c.SystemPrompt,
		CompressInput: c.CompressInput,
	}
}

// parseTimeout は "45s" のような duration か、秒数の整数を受け付けます。空なら既定値です。
func parseTimeout(v string) (time.Duration, error) {
	if v == "" {
		return generator.DefaultTimeout, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		v = strconv.Itoa(secs) + "s"
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", EnvTimeout, v)
	}
	return d, nil
}

func parseBool(key, v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
