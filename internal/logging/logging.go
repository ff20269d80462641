// Package logging は slog のロガーを組み立てます。
package logging

import (
	"io"
	"log/slog"

	"github.com/samber/lo"
)

// New は JSON 形式のロガーを作成します。
// stdio トランスポートでは stdout がプロトコル専用になるため、w には stderr を渡してください。
func New(w io.Writer, level slog.Level, timestamps bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return lo.Ternary(!timestamps && len(groups) == 0 && a.Key == slog.TimeKey, slog.Attr{}, a)
		},
	}))
}
